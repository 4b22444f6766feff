// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/prepdeck/ent/attemptevent"
	"github.com/abhisek/prepdeck/ent/mapping"
	"github.com/abhisek/prepdeck/ent/schema"
	"github.com/abhisek/prepdeck/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[0].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescDomain is the schema descriptor for domain field.
	attempteventDescDomain := attempteventFields[1].Descriptor()
	// attemptevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	attemptevent.DomainValidator = attempteventDescDomain.Validators[0].(func(string) error)
	// attempteventDescResult is the schema descriptor for result field.
	attempteventDescResult := attempteventFields[2].Descriptor()
	// attemptevent.ResultValidator is a validator for the "result" field. It is called by the builders before save.
	attemptevent.ResultValidator = attempteventDescResult.Validators[0].(func(string) error)
	// attempteventDescTimeMinutes is the schema descriptor for time_minutes field.
	attempteventDescTimeMinutes := attempteventFields[3].Descriptor()
	// attemptevent.DefaultTimeMinutes holds the default value on creation for the time_minutes field.
	attemptevent.DefaultTimeMinutes = attempteventDescTimeMinutes.Default.(int)
	// attempteventDescConfidence is the schema descriptor for confidence field.
	attempteventDescConfidence := attempteventFields[4].Descriptor()
	// attemptevent.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	attemptevent.ConfidenceValidator = attempteventDescConfidence.Validators[0].(func(string) error)
	// attempteventDescPattern is the schema descriptor for pattern field.
	attempteventDescPattern := attempteventFields[5].Descriptor()
	// attemptevent.DefaultPattern holds the default value on creation for the pattern field.
	attemptevent.DefaultPattern = attempteventDescPattern.Default.(string)
	// attempteventDescExternal is the schema descriptor for external field.
	attempteventDescExternal := attempteventFields[7].Descriptor()
	// attemptevent.DefaultExternal holds the default value on creation for the external field.
	attemptevent.DefaultExternal = attempteventDescExternal.Default.(bool)
	mappingFields := schema.Mapping{}.Fields()
	_ = mappingFields
	// mappingDescCollectionID is the schema descriptor for collection_id field.
	mappingDescCollectionID := mappingFields[0].Descriptor()
	// mapping.CollectionIDValidator is a validator for the "collection_id" field. It is called by the builders before save.
	mapping.CollectionIDValidator = mappingDescCollectionID.Validators[0].(func(string) error)
	// mappingDescTitle is the schema descriptor for title field.
	mappingDescTitle := mappingFields[2].Descriptor()
	// mapping.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	mapping.TitleValidator = mappingDescTitle.Validators[0].(func(string) error)
	// mappingDescFingerprint is the schema descriptor for fingerprint field.
	mappingDescFingerprint := mappingFields[3].Descriptor()
	// mapping.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	mapping.FingerprintValidator = mappingDescFingerprint.Validators[0].(func(string) error)
	// mappingDescAttemptsStore is the schema descriptor for attempts_store field.
	mappingDescAttemptsStore := mappingFields[4].Descriptor()
	// mapping.DefaultAttemptsStore holds the default value on creation for the attempts_store field.
	mapping.DefaultAttemptsStore = mappingDescAttemptsStore.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescFocusMode is the schema descriptor for focus_mode field.
	sessioneventDescFocusMode := sessioneventFields[1].Descriptor()
	// sessionevent.FocusModeValidator is a validator for the "focus_mode" field. It is called by the builders before save.
	sessionevent.FocusModeValidator = sessioneventDescFocusMode.Validators[0].(func(string) error)
}
