// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/tanercay/goalgrid/ent/generated/predicate"
	"github.com/tanercay/goalgrid/ent/generated/project"
	"github.com/tanercay/goalgrid/ent/generated/recurringtasktemplate"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/ent/generated/taskevent"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 4)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   project.Table,
			Columns: project.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: project.FieldID,
			},
		},
		Type: "Project",
		Fields: map[string]*sqlgraph.FieldSpec{
			project.FieldOwnerID:     {Type: field.TypeUUID, Column: project.FieldOwnerID},
			project.FieldAreaID:      {Type: field.TypeUUID, Column: project.FieldAreaID},
			project.FieldName:        {Type: field.TypeString, Column: project.FieldName},
			project.FieldDescription: {Type: field.TypeString, Column: project.FieldDescription},
			project.FieldArchived:    {Type: field.TypeBool, Column: project.FieldArchived},
			project.FieldSortOrder:   {Type: field.TypeInt, Column: project.FieldSortOrder},
			project.FieldCreatedAt:   {Type: field.TypeTime, Column: project.FieldCreatedAt},
			project.FieldUpdatedAt:   {Type: field.TypeTime, Column: project.FieldUpdatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   recurringtasktemplate.Table,
			Columns: recurringtasktemplate.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: recurringtasktemplate.FieldID,
			},
		},
		Type: "RecurringTaskTemplate",
		Fields: map[string]*sqlgraph.FieldSpec{
			recurringtasktemplate.FieldOwnerID:           {Type: field.TypeUUID, Column: recurringtasktemplate.FieldOwnerID},
			recurringtasktemplate.FieldProjectID:         {Type: field.TypeUUID, Column: recurringtasktemplate.FieldProjectID},
			recurringtasktemplate.FieldName:              {Type: field.TypeString, Column: recurringtasktemplate.FieldName},
			recurringtasktemplate.FieldDescription:       {Type: field.TypeString, Column: recurringtasktemplate.FieldDescription},
			recurringtasktemplate.FieldPriority:          {Type: field.TypeEnum, Column: recurringtasktemplate.FieldPriority},
			recurringtasktemplate.FieldCategory:          {Type: field.TypeString, Column: recurringtasktemplate.FieldCategory},
			recurringtasktemplate.FieldDueTime:           {Type: field.TypeString, Column: recurringtasktemplate.FieldDueTime},
			recurringtasktemplate.FieldRecurrencePattern: {Type: field.TypeJSON, Column: recurringtasktemplate.FieldRecurrencePattern},
			recurringtasktemplate.FieldIsActive:          {Type: field.TypeBool, Column: recurringtasktemplate.FieldIsActive},
			recurringtasktemplate.FieldLastGeneratedDate: {Type: field.TypeTime, Column: recurringtasktemplate.FieldLastGeneratedDate},
			recurringtasktemplate.FieldCreatedAt:         {Type: field.TypeTime, Column: recurringtasktemplate.FieldCreatedAt},
			recurringtasktemplate.FieldUpdatedAt:         {Type: field.TypeTime, Column: recurringtasktemplate.FieldUpdatedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldOwnerID:                   {Type: field.TypeUUID, Column: task.FieldOwnerID},
			task.FieldProjectID:                 {Type: field.TypeUUID, Column: task.FieldProjectID},
			task.FieldParentTaskID:              {Type: field.TypeUUID, Column: task.FieldParentTaskID},
			task.FieldName:                      {Type: field.TypeString, Column: task.FieldName},
			task.FieldDescription:               {Type: field.TypeString, Column: task.FieldDescription},
			task.FieldStatus:                    {Type: field.TypeEnum, Column: task.FieldStatus},
			task.FieldCompleted:                 {Type: field.TypeBool, Column: task.FieldCompleted},
			task.FieldKanbanColumn:              {Type: field.TypeEnum, Column: task.FieldKanbanColumn},
			task.FieldPriority:                  {Type: field.TypeEnum, Column: task.FieldPriority},
			task.FieldCategory:                  {Type: field.TypeString, Column: task.FieldCategory},
			task.FieldDependencies:              {Type: field.TypeJSON, Column: task.FieldDependencies},
			task.FieldSubTaskCompletionRequired: {Type: field.TypeBool, Column: task.FieldSubTaskCompletionRequired},
			task.FieldDueDate:                   {Type: field.TypeTime, Column: task.FieldDueDate},
			task.FieldDueTime:                   {Type: field.TypeString, Column: task.FieldDueTime},
			task.FieldRecurrence:                {Type: field.TypeString, Column: task.FieldRecurrence},
			task.FieldRecurrenceInterval:        {Type: field.TypeInt, Column: task.FieldRecurrenceInterval},
			task.FieldRecurrencePattern:         {Type: field.TypeJSON, Column: task.FieldRecurrencePattern},
			task.FieldTemplateID:                {Type: field.TypeUUID, Column: task.FieldTemplateID},
			task.FieldSortOrder:                 {Type: field.TypeInt, Column: task.FieldSortOrder},
			task.FieldCompletedAt:               {Type: field.TypeTime, Column: task.FieldCompletedAt},
			task.FieldDateCreated:               {Type: field.TypeTime, Column: task.FieldDateCreated},
			task.FieldCreatedAt:                 {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:                 {Type: field.TypeTime, Column: task.FieldUpdatedAt},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   taskevent.Table,
			Columns: taskevent.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: taskevent.FieldID,
			},
		},
		Type: "TaskEvent",
		Fields: map[string]*sqlgraph.FieldSpec{
			taskevent.FieldOwnerID:       {Type: field.TypeUUID, Column: taskevent.FieldOwnerID},
			taskevent.FieldEventType:     {Type: field.TypeEnum, Column: taskevent.FieldEventType},
			taskevent.FieldTaskID:        {Type: field.TypeUUID, Column: taskevent.FieldTaskID},
			taskevent.FieldRelatedTaskID: {Type: field.TypeUUID, Column: taskevent.FieldRelatedTaskID},
			taskevent.FieldDescription:   {Type: field.TypeString, Column: taskevent.FieldDescription},
			taskevent.FieldMetadata:      {Type: field.TypeJSON, Column: taskevent.FieldMetadata},
			taskevent.FieldCreatedAt:     {Type: field.TypeTime, Column: taskevent.FieldCreatedAt},
		},
	}
	graph.MustAddE(
		"tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TasksTable,
			Columns: []string{project.TasksColumn},
			Bidi:    false,
		},
		"Project",
		"Task",
	)
	graph.MustAddE(
		"project",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ProjectTable,
			Columns: []string{task.ProjectColumn},
			Bidi:    false,
		},
		"Task",
		"Project",
	)
	graph.MustAddE(
		"parent",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ParentTable,
			Columns: []string{task.ParentColumn},
			Bidi:    false,
		},
		"Task",
		"Task",
	)
	graph.MustAddE(
		"subtasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
		},
		"Task",
		"Task",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (_q *ProjectQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ProjectQuery builder.
func (_q *ProjectQuery) Filter() *ProjectFilter {
	return &ProjectFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *ProjectMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ProjectMutation builder.
func (m *ProjectMutation) Filter() *ProjectFilter {
	return &ProjectFilter{config: m.config, predicateAdder: m}
}

// ProjectFilter provides a generic filtering capability at runtime for ProjectQuery.
type ProjectFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ProjectFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ProjectFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(project.FieldID))
}

// WhereOwnerID applies the entql [16]byte predicate on the owner_id field.
func (f *ProjectFilter) WhereOwnerID(p entql.ValueP) {
	f.Where(p.Field(project.FieldOwnerID))
}

// WhereAreaID applies the entql [16]byte predicate on the area_id field.
func (f *ProjectFilter) WhereAreaID(p entql.ValueP) {
	f.Where(p.Field(project.FieldAreaID))
}

// WhereName applies the entql string predicate on the name field.
func (f *ProjectFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(project.FieldName))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *ProjectFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(project.FieldDescription))
}

// WhereArchived applies the entql bool predicate on the archived field.
func (f *ProjectFilter) WhereArchived(p entql.BoolP) {
	f.Where(p.Field(project.FieldArchived))
}

// WhereSortOrder applies the entql int predicate on the sort_order field.
func (f *ProjectFilter) WhereSortOrder(p entql.IntP) {
	f.Where(p.Field(project.FieldSortOrder))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ProjectFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(project.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *ProjectFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(project.FieldUpdatedAt))
}

// WhereHasTasks applies a predicate to check if query has an edge tasks.
func (f *ProjectFilter) WhereHasTasks() {
	f.Where(entql.HasEdge("tasks"))
}

// WhereHasTasksWith applies a predicate to check if query has an edge tasks with a given conditions (other predicates).
func (f *ProjectFilter) WhereHasTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *RecurringTaskTemplateQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the RecurringTaskTemplateQuery builder.
func (_q *RecurringTaskTemplateQuery) Filter() *RecurringTaskTemplateFilter {
	return &RecurringTaskTemplateFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *RecurringTaskTemplateMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the RecurringTaskTemplateMutation builder.
func (m *RecurringTaskTemplateMutation) Filter() *RecurringTaskTemplateFilter {
	return &RecurringTaskTemplateFilter{config: m.config, predicateAdder: m}
}

// RecurringTaskTemplateFilter provides a generic filtering capability at runtime for RecurringTaskTemplateQuery.
type RecurringTaskTemplateFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *RecurringTaskTemplateFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *RecurringTaskTemplateFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(recurringtasktemplate.FieldID))
}

// WhereOwnerID applies the entql [16]byte predicate on the owner_id field.
func (f *RecurringTaskTemplateFilter) WhereOwnerID(p entql.ValueP) {
	f.Where(p.Field(recurringtasktemplate.FieldOwnerID))
}

// WhereProjectID applies the entql [16]byte predicate on the project_id field.
func (f *RecurringTaskTemplateFilter) WhereProjectID(p entql.ValueP) {
	f.Where(p.Field(recurringtasktemplate.FieldProjectID))
}

// WhereName applies the entql string predicate on the name field.
func (f *RecurringTaskTemplateFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(recurringtasktemplate.FieldName))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *RecurringTaskTemplateFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(recurringtasktemplate.FieldDescription))
}

// WherePriority applies the entql string predicate on the priority field.
func (f *RecurringTaskTemplateFilter) WherePriority(p entql.StringP) {
	f.Where(p.Field(recurringtasktemplate.FieldPriority))
}

// WhereCategory applies the entql string predicate on the category field.
func (f *RecurringTaskTemplateFilter) WhereCategory(p entql.StringP) {
	f.Where(p.Field(recurringtasktemplate.FieldCategory))
}

// WhereDueTime applies the entql string predicate on the due_time field.
func (f *RecurringTaskTemplateFilter) WhereDueTime(p entql.StringP) {
	f.Where(p.Field(recurringtasktemplate.FieldDueTime))
}

// WhereRecurrencePattern applies the entql json.RawMessage predicate on the recurrence_pattern field.
func (f *RecurringTaskTemplateFilter) WhereRecurrencePattern(p entql.BytesP) {
	f.Where(p.Field(recurringtasktemplate.FieldRecurrencePattern))
}

// WhereIsActive applies the entql bool predicate on the is_active field.
func (f *RecurringTaskTemplateFilter) WhereIsActive(p entql.BoolP) {
	f.Where(p.Field(recurringtasktemplate.FieldIsActive))
}

// WhereLastGeneratedDate applies the entql time.Time predicate on the last_generated_date field.
func (f *RecurringTaskTemplateFilter) WhereLastGeneratedDate(p entql.TimeP) {
	f.Where(p.Field(recurringtasktemplate.FieldLastGeneratedDate))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *RecurringTaskTemplateFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(recurringtasktemplate.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *RecurringTaskTemplateFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(recurringtasktemplate.FieldUpdatedAt))
}

// addPredicate implements the predicateAdder interface.
func (_q *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (_q *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereOwnerID applies the entql [16]byte predicate on the owner_id field.
func (f *TaskFilter) WhereOwnerID(p entql.ValueP) {
	f.Where(p.Field(task.FieldOwnerID))
}

// WhereProjectID applies the entql [16]byte predicate on the project_id field.
func (f *TaskFilter) WhereProjectID(p entql.ValueP) {
	f.Where(p.Field(task.FieldProjectID))
}

// WhereParentTaskID applies the entql [16]byte predicate on the parent_task_id field.
func (f *TaskFilter) WhereParentTaskID(p entql.ValueP) {
	f.Where(p.Field(task.FieldParentTaskID))
}

// WhereName applies the entql string predicate on the name field.
func (f *TaskFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(task.FieldName))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(task.FieldDescription))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *TaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(task.FieldStatus))
}

// WhereCompleted applies the entql bool predicate on the completed field.
func (f *TaskFilter) WhereCompleted(p entql.BoolP) {
	f.Where(p.Field(task.FieldCompleted))
}

// WhereKanbanColumn applies the entql string predicate on the kanban_column field.
func (f *TaskFilter) WhereKanbanColumn(p entql.StringP) {
	f.Where(p.Field(task.FieldKanbanColumn))
}

// WherePriority applies the entql string predicate on the priority field.
func (f *TaskFilter) WherePriority(p entql.StringP) {
	f.Where(p.Field(task.FieldPriority))
}

// WhereCategory applies the entql string predicate on the category field.
func (f *TaskFilter) WhereCategory(p entql.StringP) {
	f.Where(p.Field(task.FieldCategory))
}

// WhereDependencies applies the entql json.RawMessage predicate on the dependencies field.
func (f *TaskFilter) WhereDependencies(p entql.BytesP) {
	f.Where(p.Field(task.FieldDependencies))
}

// WhereSubTaskCompletionRequired applies the entql bool predicate on the sub_task_completion_required field.
func (f *TaskFilter) WhereSubTaskCompletionRequired(p entql.BoolP) {
	f.Where(p.Field(task.FieldSubTaskCompletionRequired))
}

// WhereDueDate applies the entql time.Time predicate on the due_date field.
func (f *TaskFilter) WhereDueDate(p entql.TimeP) {
	f.Where(p.Field(task.FieldDueDate))
}

// WhereDueTime applies the entql string predicate on the due_time field.
func (f *TaskFilter) WhereDueTime(p entql.StringP) {
	f.Where(p.Field(task.FieldDueTime))
}

// WhereRecurrence applies the entql string predicate on the recurrence field.
func (f *TaskFilter) WhereRecurrence(p entql.StringP) {
	f.Where(p.Field(task.FieldRecurrence))
}

// WhereRecurrenceInterval applies the entql int predicate on the recurrence_interval field.
func (f *TaskFilter) WhereRecurrenceInterval(p entql.IntP) {
	f.Where(p.Field(task.FieldRecurrenceInterval))
}

// WhereRecurrencePattern applies the entql json.RawMessage predicate on the recurrence_pattern field.
func (f *TaskFilter) WhereRecurrencePattern(p entql.BytesP) {
	f.Where(p.Field(task.FieldRecurrencePattern))
}

// WhereTemplateID applies the entql [16]byte predicate on the template_id field.
func (f *TaskFilter) WhereTemplateID(p entql.ValueP) {
	f.Where(p.Field(task.FieldTemplateID))
}

// WhereSortOrder applies the entql int predicate on the sort_order field.
func (f *TaskFilter) WhereSortOrder(p entql.IntP) {
	f.Where(p.Field(task.FieldSortOrder))
}

// WhereCompletedAt applies the entql time.Time predicate on the completed_at field.
func (f *TaskFilter) WhereCompletedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCompletedAt))
}

// WhereDateCreated applies the entql time.Time predicate on the date_created field.
func (f *TaskFilter) WhereDateCreated(p entql.TimeP) {
	f.Where(p.Field(task.FieldDateCreated))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereHasProject applies a predicate to check if query has an edge project.
func (f *TaskFilter) WhereHasProject() {
	f.Where(entql.HasEdge("project"))
}

// WhereHasProjectWith applies a predicate to check if query has an edge project with a given conditions (other predicates).
func (f *TaskFilter) WhereHasProjectWith(preds ...predicate.Project) {
	f.Where(entql.HasEdgeWith("project", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasParent applies a predicate to check if query has an edge parent.
func (f *TaskFilter) WhereHasParent() {
	f.Where(entql.HasEdge("parent"))
}

// WhereHasParentWith applies a predicate to check if query has an edge parent with a given conditions (other predicates).
func (f *TaskFilter) WhereHasParentWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("parent", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasSubtasks applies a predicate to check if query has an edge subtasks.
func (f *TaskFilter) WhereHasSubtasks() {
	f.Where(entql.HasEdge("subtasks"))
}

// WhereHasSubtasksWith applies a predicate to check if query has an edge subtasks with a given conditions (other predicates).
func (f *TaskFilter) WhereHasSubtasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("subtasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *TaskEventQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskEventQuery builder.
func (_q *TaskEventQuery) Filter() *TaskEventFilter {
	return &TaskEventFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskEventMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskEventMutation builder.
func (m *TaskEventMutation) Filter() *TaskEventFilter {
	return &TaskEventFilter{config: m.config, predicateAdder: m}
}

// TaskEventFilter provides a generic filtering capability at runtime for TaskEventQuery.
type TaskEventFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskEventFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskEventFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(taskevent.FieldID))
}

// WhereOwnerID applies the entql [16]byte predicate on the owner_id field.
func (f *TaskEventFilter) WhereOwnerID(p entql.ValueP) {
	f.Where(p.Field(taskevent.FieldOwnerID))
}

// WhereEventType applies the entql string predicate on the event_type field.
func (f *TaskEventFilter) WhereEventType(p entql.StringP) {
	f.Where(p.Field(taskevent.FieldEventType))
}

// WhereTaskID applies the entql [16]byte predicate on the task_id field.
func (f *TaskEventFilter) WhereTaskID(p entql.ValueP) {
	f.Where(p.Field(taskevent.FieldTaskID))
}

// WhereRelatedTaskID applies the entql [16]byte predicate on the related_task_id field.
func (f *TaskEventFilter) WhereRelatedTaskID(p entql.ValueP) {
	f.Where(p.Field(taskevent.FieldRelatedTaskID))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskEventFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(taskevent.FieldDescription))
}

// WhereMetadata applies the entql json.RawMessage predicate on the metadata field.
func (f *TaskEventFilter) WhereMetadata(p entql.BytesP) {
	f.Where(p.Field(taskevent.FieldMetadata))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskEventFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(taskevent.FieldCreatedAt))
}
