// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "area_id", Type: field.TypeUUID, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// RecurringTaskTemplatesColumns holds the columns for the "recurring_task_templates" table.
	RecurringTaskTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "due_time", Type: field.TypeString, Nullable: true},
		{Name: "recurrence_pattern", Type: field.TypeJSON},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_generated_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecurringTaskTemplatesTable holds the schema information for the "recurring_task_templates" table.
	RecurringTaskTemplatesTable = &schema.Table{
		Name:       "recurring_task_templates",
		Columns:    RecurringTaskTemplatesColumns,
		PrimaryKey: []*schema.Column{RecurringTaskTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recurringtasktemplate_owner_id",
				Unique:  false,
				Columns: []*schema.Column{RecurringTaskTemplatesColumns[1]},
			},
			{
				Name:    "recurringtasktemplate_is_active",
				Unique:  false,
				Columns: []*schema.Column{RecurringTaskTemplatesColumns[9]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"todo", "in_progress", "review", "completed"}, Default: "todo"},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "kanban_column", Type: field.TypeEnum, Enums: []string{"to_do", "in_progress", "review", "done"}, Default: "to_do"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "sub_task_completion_required", Type: field.TypeBool, Default: false},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "due_time", Type: field.TypeString, Nullable: true},
		{Name: "recurrence", Type: field.TypeString, Nullable: true},
		{Name: "recurrence_interval", Type: field.TypeInt, Nullable: true},
		{Name: "recurrence_pattern", Type: field.TypeJSON, Nullable: true},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "date_created", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "parent_task_id", Type: field.TypeUUID, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[22]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tasks_tasks_subtasks",
				Columns:    []*schema.Column{TasksColumns[23]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_owner_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_owner_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[22]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_kanban_column",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_parent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[23]},
			},
			{
				Name:    "task_template_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[16]},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"task_unblocked", "task_auto_completed", "task_auto_reverted", "instance_generated"}},
		{Name: "task_id", Type: field.TypeUUID},
		{Name: "related_task_id", Type: field.TypeUUID, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_owner_id",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[1]},
			},
			{
				Name:    "taskevent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[3]},
			},
			{
				Name:    "taskevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProjectsTable,
		RecurringTaskTemplatesTable,
		TasksTable,
		TaskEventsTable,
	}
)

func init() {
	TasksTable.ForeignKeys[0].RefTable = ProjectsTable
	TasksTable.ForeignKeys[1].RefTable = TasksTable
}
