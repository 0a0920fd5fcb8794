// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mediscan-kh/mediscan/db/ent/schema"
	"github.com/mediscan-kh/mediscan/gen/ent/analysisjob"
	"github.com/mediscan-kh/mediscan/gen/ent/image"
	"github.com/mediscan-kh/mediscan/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescPayload is the schema descriptor for payload field.
	analysisjobDescPayload := analysisjobFields[2].Descriptor()
	// analysisjob.PayloadValidator is a validator for the "payload" field. It is called by the builders before save.
	analysisjob.PayloadValidator = analysisjobDescPayload.Validators[0].(func([]byte) error)
	// analysisjobDescAttempts is the schema descriptor for attempts field.
	analysisjobDescAttempts := analysisjobFields[3].Descriptor()
	// analysisjob.DefaultAttempts holds the default value on creation for the attempts field.
	analysisjob.DefaultAttempts = analysisjobDescAttempts.Default.(int)
	// analysisjob.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	analysisjob.AttemptsValidator = analysisjobDescAttempts.Validators[0].(func(int) error)
	// analysisjobDescStatus is the schema descriptor for status field.
	analysisjobDescStatus := analysisjobFields[4].Descriptor()
	// analysisjob.DefaultStatus holds the default value on creation for the status field.
	analysisjob.DefaultStatus = analysisjobDescStatus.Default.(string)
	// analysisjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	analysisjob.StatusValidator = analysisjobDescStatus.Validators[0].(func(string) error)
	// analysisjobDescEnqueuedAt is the schema descriptor for enqueued_at field.
	analysisjobDescEnqueuedAt := analysisjobFields[6].Descriptor()
	// analysisjob.DefaultEnqueuedAt holds the default value on creation for the enqueued_at field.
	analysisjob.DefaultEnqueuedAt = analysisjobDescEnqueuedAt.Default.(func() time.Time)
	// analysisjobDescID is the schema descriptor for id field.
	analysisjobDescID := analysisjobFields[0].Descriptor()
	// analysisjob.DefaultID holds the default value on creation for the id field.
	analysisjob.DefaultID = analysisjobDescID.Default.(func() uuid.UUID)
	imageFields := schema.Image{}.Fields()
	_ = imageFields
	// imageDescURL is the schema descriptor for url field.
	imageDescURL := imageFields[2].Descriptor()
	// image.URLValidator is a validator for the "url" field. It is called by the builders before save.
	image.URLValidator = imageDescURL.Validators[0].(func(string) error)
	// imageDescAnalysis is the schema descriptor for analysis field.
	imageDescAnalysis := imageFields[4].Descriptor()
	// image.DefaultAnalysis holds the default value on creation for the analysis field.
	image.DefaultAnalysis = imageDescAnalysis.Default.(string)
	// imageDescStatus is the schema descriptor for status field.
	imageDescStatus := imageFields[5].Descriptor()
	// image.DefaultStatus holds the default value on creation for the status field.
	image.DefaultStatus = imageDescStatus.Default.(string)
	// image.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	image.StatusValidator = imageDescStatus.Validators[0].(func(string) error)
	// imageDescCreatedAt is the schema descriptor for created_at field.
	imageDescCreatedAt := imageFields[7].Descriptor()
	// image.DefaultCreatedAt holds the default value on creation for the created_at field.
	image.DefaultCreatedAt = imageDescCreatedAt.Default.(func() time.Time)
	// imageDescID is the schema descriptor for id field.
	imageDescID := imageFields[0].Descriptor()
	// image.DefaultID holds the default value on creation for the id field.
	image.DefaultID = imageDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[3].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	// userDescIsPremium is the schema descriptor for is_premium field.
	userDescIsPremium := userFields[4].Descriptor()
	// user.DefaultIsPremium holds the default value on creation for the is_premium field.
	user.DefaultIsPremium = userDescIsPremium.Default.(bool)
	// userDescUploadCount is the schema descriptor for upload_count field.
	userDescUploadCount := userFields[5].Descriptor()
	// user.DefaultUploadCount holds the default value on creation for the upload_count field.
	user.DefaultUploadCount = userDescUploadCount.Default.(int)
	// user.UploadCountValidator is a validator for the "upload_count" field. It is called by the builders before save.
	user.UploadCountValidator = userDescUploadCount.Validators[0].(func(int) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
