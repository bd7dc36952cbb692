// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/google/uuid"
	"github.com/tanercay/goalgrid/ent/generated/project"
	"github.com/tanercay/goalgrid/ent/generated/recurringtasktemplate"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/ent/generated/taskevent"
	"github.com/tanercay/goalgrid/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[3].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescArchived is the schema descriptor for archived field.
	projectDescArchived := projectFields[5].Descriptor()
	// project.DefaultArchived holds the default value on creation for the archived field.
	project.DefaultArchived = projectDescArchived.Default.(bool)
	// projectDescSortOrder is the schema descriptor for sort_order field.
	projectDescSortOrder := projectFields[6].Descriptor()
	// project.DefaultSortOrder holds the default value on creation for the sort_order field.
	project.DefaultSortOrder = projectDescSortOrder.Default.(int)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[7].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[8].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	recurringtasktemplateFields := schema.RecurringTaskTemplate{}.Fields()
	_ = recurringtasktemplateFields
	// recurringtasktemplateDescName is the schema descriptor for name field.
	recurringtasktemplateDescName := recurringtasktemplateFields[3].Descriptor()
	// recurringtasktemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	recurringtasktemplate.NameValidator = recurringtasktemplateDescName.Validators[0].(func(string) error)
	// recurringtasktemplateDescIsActive is the schema descriptor for is_active field.
	recurringtasktemplateDescIsActive := recurringtasktemplateFields[9].Descriptor()
	// recurringtasktemplate.DefaultIsActive holds the default value on creation for the is_active field.
	recurringtasktemplate.DefaultIsActive = recurringtasktemplateDescIsActive.Default.(bool)
	// recurringtasktemplateDescCreatedAt is the schema descriptor for created_at field.
	recurringtasktemplateDescCreatedAt := recurringtasktemplateFields[11].Descriptor()
	// recurringtasktemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	recurringtasktemplate.DefaultCreatedAt = recurringtasktemplateDescCreatedAt.Default.(func() time.Time)
	// recurringtasktemplateDescUpdatedAt is the schema descriptor for updated_at field.
	recurringtasktemplateDescUpdatedAt := recurringtasktemplateFields[12].Descriptor()
	// recurringtasktemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recurringtasktemplate.DefaultUpdatedAt = recurringtasktemplateDescUpdatedAt.Default.(func() time.Time)
	// recurringtasktemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recurringtasktemplate.UpdateDefaultUpdatedAt = recurringtasktemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// recurringtasktemplateDescID is the schema descriptor for id field.
	recurringtasktemplateDescID := recurringtasktemplateFields[0].Descriptor()
	// recurringtasktemplate.DefaultID holds the default value on creation for the id field.
	recurringtasktemplate.DefaultID = recurringtasktemplateDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescName is the schema descriptor for name field.
	taskDescName := taskFields[4].Descriptor()
	// task.NameValidator is a validator for the "name" field. It is called by the builders before save.
	task.NameValidator = taskDescName.Validators[0].(func(string) error)
	// taskDescCompleted is the schema descriptor for completed field.
	taskDescCompleted := taskFields[7].Descriptor()
	// task.DefaultCompleted holds the default value on creation for the completed field.
	task.DefaultCompleted = taskDescCompleted.Default.(bool)
	// taskDescSubTaskCompletionRequired is the schema descriptor for sub_task_completion_required field.
	taskDescSubTaskCompletionRequired := taskFields[12].Descriptor()
	// task.DefaultSubTaskCompletionRequired holds the default value on creation for the sub_task_completion_required field.
	task.DefaultSubTaskCompletionRequired = taskDescSubTaskCompletionRequired.Default.(bool)
	// taskDescSortOrder is the schema descriptor for sort_order field.
	taskDescSortOrder := taskFields[19].Descriptor()
	// task.DefaultSortOrder holds the default value on creation for the sort_order field.
	task.DefaultSortOrder = taskDescSortOrder.Default.(int)
	// taskDescDateCreated is the schema descriptor for date_created field.
	taskDescDateCreated := taskFields[21].Descriptor()
	// task.DefaultDateCreated holds the default value on creation for the date_created field.
	task.DefaultDateCreated = taskDescDateCreated.Default.(func() time.Time)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[22].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[23].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	taskeventFields := schema.TaskEvent{}.Fields()
	_ = taskeventFields
	// taskeventDescCreatedAt is the schema descriptor for created_at field.
	taskeventDescCreatedAt := taskeventFields[7].Descriptor()
	// taskevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskevent.DefaultCreatedAt = taskeventDescCreatedAt.Default.(func() time.Time)
	// taskeventDescID is the schema descriptor for id field.
	taskeventDescID := taskeventFields[0].Descriptor()
	// taskevent.DefaultID holds the default value on creation for the id field.
	taskevent.DefaultID = taskeventDescID.Default.(func() uuid.UUID)
}
