// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.8
// 	protoc        (unknown)
// source: api/proto/task/v1/task.proto

package taskv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// TaskStatus is the closed status set of the engine.
type TaskStatus int32

const (
	TaskStatus_TASK_STATUS_UNSPECIFIED TaskStatus = 0
	TaskStatus_TASK_STATUS_TODO        TaskStatus = 1
	TaskStatus_TASK_STATUS_IN_PROGRESS TaskStatus = 2
	TaskStatus_TASK_STATUS_REVIEW      TaskStatus = 3
	TaskStatus_TASK_STATUS_COMPLETED   TaskStatus = 4
)

// Enum value maps for TaskStatus.
var (
	TaskStatus_name = map[int32]string{
		0: "TASK_STATUS_UNSPECIFIED",
		1: "TASK_STATUS_TODO",
		2: "TASK_STATUS_IN_PROGRESS",
		3: "TASK_STATUS_REVIEW",
		4: "TASK_STATUS_COMPLETED",
	}
	TaskStatus_value = map[string]int32{
		"TASK_STATUS_UNSPECIFIED": 0,
		"TASK_STATUS_TODO":        1,
		"TASK_STATUS_IN_PROGRESS": 2,
		"TASK_STATUS_REVIEW":      3,
		"TASK_STATUS_COMPLETED":   4,
	}
)

func (x TaskStatus) Enum() *TaskStatus {
	p := new(TaskStatus)
	*p = x
	return p
}

func (x TaskStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (TaskStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_task_v1_task_proto_enumTypes[0].Descriptor()
}

func (TaskStatus) Type() protoreflect.EnumType {
	return &file_api_proto_task_v1_task_proto_enumTypes[0]
}

func (x TaskStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use TaskStatus.Descriptor instead.
func (TaskStatus) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{0}
}

type Priority int32

const (
	Priority_PRIORITY_UNSPECIFIED Priority = 0
	Priority_PRIORITY_LOW         Priority = 1
	Priority_PRIORITY_MEDIUM      Priority = 2
	Priority_PRIORITY_HIGH        Priority = 3
)

// Enum value maps for Priority.
var (
	Priority_name = map[int32]string{
		0: "PRIORITY_UNSPECIFIED",
		1: "PRIORITY_LOW",
		2: "PRIORITY_MEDIUM",
		3: "PRIORITY_HIGH",
	}
	Priority_value = map[string]int32{
		"PRIORITY_UNSPECIFIED": 0,
		"PRIORITY_LOW":         1,
		"PRIORITY_MEDIUM":      2,
		"PRIORITY_HIGH":        3,
	}
)

func (x Priority) Enum() *Priority {
	p := new(Priority)
	*p = x
	return p
}

func (x Priority) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Priority) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_task_v1_task_proto_enumTypes[1].Descriptor()
}

func (Priority) Type() protoreflect.EnumType {
	return &file_api_proto_task_v1_task_proto_enumTypes[1]
}

func (x Priority) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Priority.Descriptor instead.
func (Priority) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{1}
}

// RecurrencePattern mirrors the structured recurrence value object.
type RecurrencePattern struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"` // daily | weekly | monthly | custom
	Interval      int32                  `protobuf:"varint,2,opt,name=interval,proto3" json:"interval,omitempty"`
	Weekdays      []string               `protobuf:"bytes,3,rep,name=weekdays,proto3" json:"weekdays,omitempty"`
	MonthDay      int32                  `protobuf:"varint,4,opt,name=month_day,json=monthDay,proto3" json:"month_day,omitempty"` // 0 when unset
	EndDate       *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	MaxInstances  int32                  `protobuf:"varint,6,opt,name=max_instances,json=maxInstances,proto3" json:"max_instances,omitempty"` // 0 when unset
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecurrencePattern) Reset() {
	*x = RecurrencePattern{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecurrencePattern) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecurrencePattern) ProtoMessage() {}

func (x *RecurrencePattern) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecurrencePattern.ProtoReflect.Descriptor instead.
func (*RecurrencePattern) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{0}
}

func (x *RecurrencePattern) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *RecurrencePattern) GetInterval() int32 {
	if x != nil {
		return x.Interval
	}
	return 0
}

func (x *RecurrencePattern) GetWeekdays() []string {
	if x != nil {
		return x.Weekdays
	}
	return nil
}

func (x *RecurrencePattern) GetMonthDay() int32 {
	if x != nil {
		return x.MonthDay
	}
	return 0
}

func (x *RecurrencePattern) GetEndDate() *timestamppb.Timestamp {
	if x != nil {
		return x.EndDate
	}
	return nil
}

func (x *RecurrencePattern) GetMaxInstances() int32 {
	if x != nil {
		return x.MaxInstances
	}
	return 0
}

type Task struct {
	state                     protoimpl.MessageState `protogen:"open.v1"`
	Id                        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId                   string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ProjectId                 string                 `protobuf:"bytes,3,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ParentTaskId              string                 `protobuf:"bytes,4,opt,name=parent_task_id,json=parentTaskId,proto3" json:"parent_task_id,omitempty"`
	Name                      string                 `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
	Description               string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	Status                    TaskStatus             `protobuf:"varint,7,opt,name=status,proto3,enum=task.v1.TaskStatus" json:"status,omitempty"`
	Priority                  Priority               `protobuf:"varint,8,opt,name=priority,proto3,enum=task.v1.Priority" json:"priority,omitempty"`
	Category                  string                 `protobuf:"bytes,9,opt,name=category,proto3" json:"category,omitempty"`
	DependencyTaskIds         []string               `protobuf:"bytes,10,rep,name=dependency_task_ids,json=dependencyTaskIds,proto3" json:"dependency_task_ids,omitempty"`
	SubTaskCompletionRequired bool                   `protobuf:"varint,11,opt,name=sub_task_completion_required,json=subTaskCompletionRequired,proto3" json:"sub_task_completion_required,omitempty"`
	KanbanColumn              string                 `protobuf:"bytes,12,opt,name=kanban_column,json=kanbanColumn,proto3" json:"kanban_column,omitempty"` // projection of status, to_do | in_progress | review | done
	DueDate                   *timestamppb.Timestamp `protobuf:"bytes,13,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	DueTime                   string                 `protobuf:"bytes,14,opt,name=due_time,json=dueTime,proto3" json:"due_time,omitempty"`
	RecurrencePattern         *RecurrencePattern     `protobuf:"bytes,15,opt,name=recurrence_pattern,json=recurrencePattern,proto3" json:"recurrence_pattern,omitempty"`
	TemplateId                string                 `protobuf:"bytes,16,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	SortOrder                 int32                  `protobuf:"varint,17,opt,name=sort_order,json=sortOrder,proto3" json:"sort_order,omitempty"`
	Completed                 bool                   `protobuf:"varint,18,opt,name=completed,proto3" json:"completed,omitempty"`
	CompletedAt               *timestamppb.Timestamp `protobuf:"bytes,19,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	CreatedAt                 *timestamppb.Timestamp `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt                 *timestamppb.Timestamp `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields             protoimpl.UnknownFields
	sizeCache                 protoimpl.SizeCache
}

func (x *Task) Reset() {
	*x = Task{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Task) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Task) ProtoMessage() {}

func (x *Task) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Task.ProtoReflect.Descriptor instead.
func (*Task) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{1}
}

func (x *Task) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Task) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Task) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Task) GetParentTaskId() string {
	if x != nil {
		return x.ParentTaskId
	}
	return ""
}

func (x *Task) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Task) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Task) GetStatus() TaskStatus {
	if x != nil {
		return x.Status
	}
	return TaskStatus_TASK_STATUS_UNSPECIFIED
}

func (x *Task) GetPriority() Priority {
	if x != nil {
		return x.Priority
	}
	return Priority_PRIORITY_UNSPECIFIED
}

func (x *Task) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Task) GetDependencyTaskIds() []string {
	if x != nil {
		return x.DependencyTaskIds
	}
	return nil
}

func (x *Task) GetSubTaskCompletionRequired() bool {
	if x != nil {
		return x.SubTaskCompletionRequired
	}
	return false
}

func (x *Task) GetKanbanColumn() string {
	if x != nil {
		return x.KanbanColumn
	}
	return ""
}

func (x *Task) GetDueDate() *timestamppb.Timestamp {
	if x != nil {
		return x.DueDate
	}
	return nil
}

func (x *Task) GetDueTime() string {
	if x != nil {
		return x.DueTime
	}
	return ""
}

func (x *Task) GetRecurrencePattern() *RecurrencePattern {
	if x != nil {
		return x.RecurrencePattern
	}
	return nil
}

func (x *Task) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *Task) GetSortOrder() int32 {
	if x != nil {
		return x.SortOrder
	}
	return 0
}

func (x *Task) GetCompleted() bool {
	if x != nil {
		return x.Completed
	}
	return false
}

func (x *Task) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

func (x *Task) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Task) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type Project struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	AreaId        string                 `protobuf:"bytes,3,opt,name=area_id,json=areaId,proto3" json:"area_id,omitempty"`
	Name          string                 `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Archived      bool                   `protobuf:"varint,6,opt,name=archived,proto3" json:"archived,omitempty"`
	SortOrder     int32                  `protobuf:"varint,7,opt,name=sort_order,json=sortOrder,proto3" json:"sort_order,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Project) Reset() {
	*x = Project{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Project) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Project) ProtoMessage() {}

func (x *Project) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Project.ProtoReflect.Descriptor instead.
func (*Project) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{2}
}

func (x *Project) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Project) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Project) GetAreaId() string {
	if x != nil {
		return x.AreaId
	}
	return ""
}

func (x *Project) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Project) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Project) GetArchived() bool {
	if x != nil {
		return x.Archived
	}
	return false
}

func (x *Project) GetSortOrder() int32 {
	if x != nil {
		return x.SortOrder
	}
	return 0
}

func (x *Project) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Project) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	AreaId        string                 `protobuf:"bytes,3,opt,name=area_id,json=areaId,proto3" json:"area_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProjectRequest) Reset() {
	*x = CreateProjectRequest{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectRequest) ProtoMessage() {}

func (x *CreateProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectRequest.ProtoReflect.Descriptor instead.
func (*CreateProjectRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{3}
}

func (x *CreateProjectRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProjectRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateProjectRequest) GetAreaId() string {
	if x != nil {
		return x.AreaId
	}
	return ""
}

type CreateProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       *Project               `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProjectResponse) Reset() {
	*x = CreateProjectResponse{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectResponse) ProtoMessage() {}

func (x *CreateProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectResponse.ProtoReflect.Descriptor instead.
func (*CreateProjectResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{4}
}

func (x *CreateProjectResponse) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type ListProjectsRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	IncludeArchived bool                   `protobuf:"varint,1,opt,name=include_archived,json=includeArchived,proto3" json:"include_archived,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListProjectsRequest) Reset() {
	*x = ListProjectsRequest{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsRequest) ProtoMessage() {}

func (x *ListProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsRequest.ProtoReflect.Descriptor instead.
func (*ListProjectsRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{5}
}

func (x *ListProjectsRequest) GetIncludeArchived() bool {
	if x != nil {
		return x.IncludeArchived
	}
	return false
}

type ListProjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Projects      []*Project             `protobuf:"bytes,1,rep,name=projects,proto3" json:"projects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsResponse) Reset() {
	*x = ListProjectsResponse{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsResponse) ProtoMessage() {}

func (x *ListProjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsResponse.ProtoReflect.Descriptor instead.
func (*ListProjectsResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{6}
}

func (x *ListProjectsResponse) GetProjects() []*Project {
	if x != nil {
		return x.Projects
	}
	return nil
}

type CreateTaskRequest struct {
	state                     protoimpl.MessageState `protogen:"open.v1"`
	ProjectId                 string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name                      string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description               string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Priority                  Priority               `protobuf:"varint,4,opt,name=priority,proto3,enum=task.v1.Priority" json:"priority,omitempty"`
	Category                  string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	ParentTaskId              string                 `protobuf:"bytes,6,opt,name=parent_task_id,json=parentTaskId,proto3" json:"parent_task_id,omitempty"`
	DependencyTaskIds         []string               `protobuf:"bytes,7,rep,name=dependency_task_ids,json=dependencyTaskIds,proto3" json:"dependency_task_ids,omitempty"`
	SubTaskCompletionRequired bool                   `protobuf:"varint,8,opt,name=sub_task_completion_required,json=subTaskCompletionRequired,proto3" json:"sub_task_completion_required,omitempty"`
	DueDate                   *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	DueTime                   string                 `protobuf:"bytes,10,opt,name=due_time,json=dueTime,proto3" json:"due_time,omitempty"`
	unknownFields             protoimpl.UnknownFields
	sizeCache                 protoimpl.SizeCache
}

func (x *CreateTaskRequest) Reset() {
	*x = CreateTaskRequest{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTaskRequest) ProtoMessage() {}

func (x *CreateTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTaskRequest.ProtoReflect.Descriptor instead.
func (*CreateTaskRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{7}
}

func (x *CreateTaskRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *CreateTaskRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateTaskRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateTaskRequest) GetPriority() Priority {
	if x != nil {
		return x.Priority
	}
	return Priority_PRIORITY_UNSPECIFIED
}

func (x *CreateTaskRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CreateTaskRequest) GetParentTaskId() string {
	if x != nil {
		return x.ParentTaskId
	}
	return ""
}

func (x *CreateTaskRequest) GetDependencyTaskIds() []string {
	if x != nil {
		return x.DependencyTaskIds
	}
	return nil
}

func (x *CreateTaskRequest) GetSubTaskCompletionRequired() bool {
	if x != nil {
		return x.SubTaskCompletionRequired
	}
	return false
}

func (x *CreateTaskRequest) GetDueDate() *timestamppb.Timestamp {
	if x != nil {
		return x.DueDate
	}
	return nil
}

func (x *CreateTaskRequest) GetDueTime() string {
	if x != nil {
		return x.DueTime
	}
	return ""
}

type CreateTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTaskResponse) Reset() {
	*x = CreateTaskResponse{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTaskResponse) ProtoMessage() {}

func (x *CreateTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTaskResponse.ProtoReflect.Descriptor instead.
func (*CreateTaskResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{8}
}

func (x *CreateTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type GetTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskRequest) Reset() {
	*x = GetTaskRequest{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskRequest) ProtoMessage() {}

func (x *GetTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskRequest.ProtoReflect.Descriptor instead.
func (*GetTaskRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{9}
}

func (x *GetTaskRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskResponse) Reset() {
	*x = GetTaskResponse{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskResponse) ProtoMessage() {}

func (x *GetTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskResponse.ProtoReflect.Descriptor instead.
func (*GetTaskResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{10}
}

func (x *GetTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type ListTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Status        TaskStatus             `protobuf:"varint,2,opt,name=status,proto3,enum=task.v1.TaskStatus" json:"status,omitempty"` // unspecified = no filter
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksRequest) Reset() {
	*x = ListTasksRequest{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksRequest) ProtoMessage() {}

func (x *ListTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksRequest.ProtoReflect.Descriptor instead.
func (*ListTasksRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{11}
}

func (x *ListTasksRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ListTasksRequest) GetStatus() TaskStatus {
	if x != nil {
		return x.Status
	}
	return TaskStatus_TASK_STATUS_UNSPECIFIED
}

type ListTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*Task                `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksResponse) Reset() {
	*x = ListTasksResponse{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksResponse) ProtoMessage() {}

func (x *ListTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksResponse.ProtoReflect.Descriptor instead.
func (*ListTasksResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{12}
}

func (x *ListTasksResponse) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type UpdateTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Priority      Priority               `protobuf:"varint,4,opt,name=priority,proto3,enum=task.v1.Priority" json:"priority,omitempty"`
	Category      string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	DueDate       *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	DueTime       string                 `protobuf:"bytes,7,opt,name=due_time,json=dueTime,proto3" json:"due_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTaskRequest) Reset() {
	*x = UpdateTaskRequest{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTaskRequest) ProtoMessage() {}

func (x *UpdateTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTaskRequest.ProtoReflect.Descriptor instead.
func (*UpdateTaskRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateTaskRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateTaskRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateTaskRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateTaskRequest) GetPriority() Priority {
	if x != nil {
		return x.Priority
	}
	return Priority_PRIORITY_UNSPECIFIED
}

func (x *UpdateTaskRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *UpdateTaskRequest) GetDueDate() *timestamppb.Timestamp {
	if x != nil {
		return x.DueDate
	}
	return nil
}

func (x *UpdateTaskRequest) GetDueTime() string {
	if x != nil {
		return x.DueTime
	}
	return ""
}

type UpdateTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTaskResponse) Reset() {
	*x = UpdateTaskResponse{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTaskResponse) ProtoMessage() {}

func (x *UpdateTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTaskResponse.ProtoReflect.Descriptor instead.
func (*UpdateTaskResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{14}
}

func (x *UpdateTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

// UpdateTaskStatus is the attempt_transition entry point. Dependency- or
// sub-task-gated requests fail with FAILED_PRECONDITION carrying the
// blocking task names.
type UpdateTaskStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        TaskStatus             `protobuf:"varint,2,opt,name=status,proto3,enum=task.v1.TaskStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTaskStatusRequest) Reset() {
	*x = UpdateTaskStatusRequest{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTaskStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTaskStatusRequest) ProtoMessage() {}

func (x *UpdateTaskStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTaskStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateTaskStatusRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{15}
}

func (x *UpdateTaskStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateTaskStatusRequest) GetStatus() TaskStatus {
	if x != nil {
		return x.Status
	}
	return TaskStatus_TASK_STATUS_UNSPECIFIED
}

type UpdateTaskStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTaskStatusResponse) Reset() {
	*x = UpdateTaskStatusResponse{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTaskStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTaskStatusResponse) ProtoMessage() {}

func (x *UpdateTaskStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTaskStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateTaskStatusResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{16}
}

func (x *UpdateTaskStatusResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type SetTaskDependenciesRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DependencyTaskIds []string               `protobuf:"bytes,2,rep,name=dependency_task_ids,json=dependencyTaskIds,proto3" json:"dependency_task_ids,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *SetTaskDependenciesRequest) Reset() {
	*x = SetTaskDependenciesRequest{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTaskDependenciesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTaskDependenciesRequest) ProtoMessage() {}

func (x *SetTaskDependenciesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTaskDependenciesRequest.ProtoReflect.Descriptor instead.
func (*SetTaskDependenciesRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{17}
}

func (x *SetTaskDependenciesRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SetTaskDependenciesRequest) GetDependencyTaskIds() []string {
	if x != nil {
		return x.DependencyTaskIds
	}
	return nil
}

type SetTaskDependenciesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTaskDependenciesResponse) Reset() {
	*x = SetTaskDependenciesResponse{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTaskDependenciesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTaskDependenciesResponse) ProtoMessage() {}

func (x *SetTaskDependenciesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTaskDependenciesResponse.ProtoReflect.Descriptor instead.
func (*SetTaskDependenciesResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{18}
}

func (x *SetTaskDependenciesResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type DeleteTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTaskRequest) Reset() {
	*x = DeleteTaskRequest{}
	mi := &file_api_proto_task_v1_task_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTaskRequest) ProtoMessage() {}

func (x *DeleteTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_task_v1_task_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTaskRequest.ProtoReflect.Descriptor instead.
func (*DeleteTaskRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_task_v1_task_proto_rawDescGZIP(), []int{19}
}

func (x *DeleteTaskRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

var File_api_proto_task_v1_task_proto protoreflect.FileDescriptor

const file_api_proto_task_v1_task_proto_rawDesc = "" +
	"\n" +
	"\x1capi/proto/task/v1/task.proto\x12\atask.v1\x1a\x1bgoogle/protobuf/empty.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\xd8\x01\n" +
	"\x11RecurrencePattern\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x1a\n" +
	"\binterval\x18\x02 \x01(\x05R\binterval\x12\x1a\n" +
	"\bweekdays\x18\x03 \x03(\tR\bweekdays\x12\x1b\n" +
	"\tmonth_day\x18\x04 \x01(\x05R\bmonthDay\x125\n" +
	"\bend_date\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\aendDate\x12#\n" +
	"\rmax_instances\x18\x06 \x01(\x05R\fmaxInstances\"\xea\x06\n" +
	"\x04Task\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x03 \x01(\tR\tprojectId\x12$\n" +
	"\x0eparent_task_id\x18\x04 \x01(\tR\fparentTaskId\x12\x12\n" +
	"\x04name\x18\x05 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12+\n" +
	"\x06status\x18\a \x01(\x0e2\x13.task.v1.TaskStatusR\x06status\x12-\n" +
	"\bpriority\x18\b \x01(\x0e2\x11.task.v1.PriorityR\bpriority\x12\x1a\n" +
	"\bcategory\x18\t \x01(\tR\bcategory\x12.\n" +
	"\x13dependency_task_ids\x18\n" +
	" \x03(\tR\x11dependencyTaskIds\x12?\n" +
	"\x1csub_task_completion_required\x18\v \x01(\bR\x19subTaskCompletionRequired\x12#\n" +
	"\rkanban_column\x18\f \x01(\tR\fkanbanColumn\x125\n" +
	"\bdue_date\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\adueDate\x12\x19\n" +
	"\bdue_time\x18\x0e \x01(\tR\adueTime\x12I\n" +
	"\x12recurrence_pattern\x18\x0f \x01(\v2\x1a.task.v1.RecurrencePatternR\x11recurrencePattern\x12\x1f\n" +
	"\vtemplate_id\x18\x10 \x01(\tR\n" +
	"templateId\x12\x1d\n" +
	"\n" +
	"sort_order\x18\x11 \x01(\x05R\tsortOrder\x12\x1c\n" +
	"\tcompleted\x18\x12 \x01(\bR\tcompleted\x12=\n" +
	"\fcompleted_at\x18\x13 \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\x129\n" +
	"\n" +
	"created_at\x18\x14 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x15 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xb4\x02\n" +
	"\aProject\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x17\n" +
	"\aarea_id\x18\x03 \x01(\tR\x06areaId\x12\x12\n" +
	"\x04name\x18\x04 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12\x1a\n" +
	"\barchived\x18\x06 \x01(\bR\barchived\x12\x1d\n" +
	"\n" +
	"sort_order\x18\a \x01(\x05R\tsortOrder\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"e\n" +
	"\x14CreateProjectRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x17\n" +
	"\aarea_id\x18\x03 \x01(\tR\x06areaId\"C\n" +
	"\x15CreateProjectResponse\x12*\n" +
	"\aproject\x18\x01 \x01(\v2\x10.task.v1.ProjectR\aproject\"@\n" +
	"\x13ListProjectsRequest\x12)\n" +
	"\x10include_archived\x18\x01 \x01(\bR\x0fincludeArchived\"D\n" +
	"\x14ListProjectsResponse\x12,\n" +
	"\bprojects\x18\x01 \x03(\v2\x10.task.v1.ProjectR\bprojects\"\x9c\x03\n" +
	"\x11CreateTaskRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12-\n" +
	"\bpriority\x18\x04 \x01(\x0e2\x11.task.v1.PriorityR\bpriority\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12$\n" +
	"\x0eparent_task_id\x18\x06 \x01(\tR\fparentTaskId\x12.\n" +
	"\x13dependency_task_ids\x18\a \x03(\tR\x11dependencyTaskIds\x12?\n" +
	"\x1csub_task_completion_required\x18\b \x01(\bR\x19subTaskCompletionRequired\x125\n" +
	"\bdue_date\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\adueDate\x12\x19\n" +
	"\bdue_time\x18\n" +
	" \x01(\tR\adueTime\"7\n" +
	"\x12CreateTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\" \n" +
	"\x0eGetTaskRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"4\n" +
	"\x0fGetTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"^\n" +
	"\x10ListTasksRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12+\n" +
	"\x06status\x18\x02 \x01(\x0e2\x13.task.v1.TaskStatusR\x06status\"8\n" +
	"\x11ListTasksResponse\x12#\n" +
	"\x05tasks\x18\x01 \x03(\v2\r.task.v1.TaskR\x05tasks\"\xf6\x01\n" +
	"\x11UpdateTaskRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12-\n" +
	"\bpriority\x18\x04 \x01(\x0e2\x11.task.v1.PriorityR\bpriority\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x125\n" +
	"\bdue_date\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\adueDate\x12\x19\n" +
	"\bdue_time\x18\a \x01(\tR\adueTime\"7\n" +
	"\x12UpdateTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"V\n" +
	"\x17UpdateTaskStatusRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12+\n" +
	"\x06status\x18\x02 \x01(\x0e2\x13.task.v1.TaskStatusR\x06status\"=\n" +
	"\x18UpdateTaskStatusResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"\\\n" +
	"\x1aSetTaskDependenciesRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12.\n" +
	"\x13dependency_task_ids\x18\x02 \x03(\tR\x11dependencyTaskIds\"@\n" +
	"\x1bSetTaskDependenciesResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"#\n" +
	"\x11DeleteTaskRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id*\x8f\x01\n" +
	"\n" +
	"TaskStatus\x12\x1b\n" +
	"\x17TASK_STATUS_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10TASK_STATUS_TODO\x10\x01\x12\x1b\n" +
	"\x17TASK_STATUS_IN_PROGRESS\x10\x02\x12\x16\n" +
	"\x12TASK_STATUS_REVIEW\x10\x03\x12\x19\n" +
	"\x15TASK_STATUS_COMPLETED\x10\x04*^\n" +
	"\bPriority\x12\x18\n" +
	"\x14PRIORITY_UNSPECIFIED\x10\x00\x12\x10\n" +
	"\fPRIORITY_LOW\x10\x01\x12\x13\n" +
	"\x0fPRIORITY_MEDIUM\x10\x02\x12\x11\n" +
	"\rPRIORITY_HIGH\x10\x032\xb7\x05\n" +
	"\vTaskService\x12N\n" +
	"\rCreateProject\x12\x1d.task.v1.CreateProjectRequest\x1a\x1e.task.v1.CreateProjectResponse\x12K\n" +
	"\fListProjects\x12\x1c.task.v1.ListProjectsRequest\x1a\x1d.task.v1.ListProjectsResponse\x12E\n" +
	"\n" +
	"CreateTask\x12\x1a.task.v1.CreateTaskRequest\x1a\x1b.task.v1.CreateTaskResponse\x12<\n" +
	"\aGetTask\x12\x17.task.v1.GetTaskRequest\x1a\x18.task.v1.GetTaskResponse\x12B\n" +
	"\tListTasks\x12\x19.task.v1.ListTasksRequest\x1a\x1a.task.v1.ListTasksResponse\x12E\n" +
	"\n" +
	"UpdateTask\x12\x1a.task.v1.UpdateTaskRequest\x1a\x1b.task.v1.UpdateTaskResponse\x12W\n" +
	"\x10UpdateTaskStatus\x12 .task.v1.UpdateTaskStatusRequest\x1a!.task.v1.UpdateTaskStatusResponse\x12`\n" +
	"\x13SetTaskDependencies\x12#.task.v1.SetTaskDependenciesRequest\x1a$.task.v1.SetTaskDependenciesResponse\x12@\n" +
	"\n" +
	"DeleteTask\x12\x1a.task.v1.DeleteTaskRequest\x1a\x16.google.protobuf.EmptyBAZ?github.com/tanercay/goalgrid/api/proto/task/v1/generated;taskv1b\x06proto3"

var (
	file_api_proto_task_v1_task_proto_rawDescOnce sync.Once
	file_api_proto_task_v1_task_proto_rawDescData []byte
)

func file_api_proto_task_v1_task_proto_rawDescGZIP() []byte {
	file_api_proto_task_v1_task_proto_rawDescOnce.Do(func() {
		file_api_proto_task_v1_task_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_api_proto_task_v1_task_proto_rawDesc), len(file_api_proto_task_v1_task_proto_rawDesc)))
	})
	return file_api_proto_task_v1_task_proto_rawDescData
}

var file_api_proto_task_v1_task_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_api_proto_task_v1_task_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_api_proto_task_v1_task_proto_goTypes = []any{
	(TaskStatus)(0),                     // 0: task.v1.TaskStatus
	(Priority)(0),                       // 1: task.v1.Priority
	(*RecurrencePattern)(nil),           // 2: task.v1.RecurrencePattern
	(*Task)(nil),                        // 3: task.v1.Task
	(*Project)(nil),                     // 4: task.v1.Project
	(*CreateProjectRequest)(nil),        // 5: task.v1.CreateProjectRequest
	(*CreateProjectResponse)(nil),       // 6: task.v1.CreateProjectResponse
	(*ListProjectsRequest)(nil),         // 7: task.v1.ListProjectsRequest
	(*ListProjectsResponse)(nil),        // 8: task.v1.ListProjectsResponse
	(*CreateTaskRequest)(nil),           // 9: task.v1.CreateTaskRequest
	(*CreateTaskResponse)(nil),          // 10: task.v1.CreateTaskResponse
	(*GetTaskRequest)(nil),              // 11: task.v1.GetTaskRequest
	(*GetTaskResponse)(nil),             // 12: task.v1.GetTaskResponse
	(*ListTasksRequest)(nil),            // 13: task.v1.ListTasksRequest
	(*ListTasksResponse)(nil),           // 14: task.v1.ListTasksResponse
	(*UpdateTaskRequest)(nil),           // 15: task.v1.UpdateTaskRequest
	(*UpdateTaskResponse)(nil),          // 16: task.v1.UpdateTaskResponse
	(*UpdateTaskStatusRequest)(nil),     // 17: task.v1.UpdateTaskStatusRequest
	(*UpdateTaskStatusResponse)(nil),    // 18: task.v1.UpdateTaskStatusResponse
	(*SetTaskDependenciesRequest)(nil),  // 19: task.v1.SetTaskDependenciesRequest
	(*SetTaskDependenciesResponse)(nil), // 20: task.v1.SetTaskDependenciesResponse
	(*DeleteTaskRequest)(nil),           // 21: task.v1.DeleteTaskRequest
	(*timestamppb.Timestamp)(nil),       // 22: google.protobuf.Timestamp
	(*emptypb.Empty)(nil),               // 23: google.protobuf.Empty
}
var file_api_proto_task_v1_task_proto_depIdxs = []int32{
	22, // 0: task.v1.RecurrencePattern.end_date:type_name -> google.protobuf.Timestamp
	0,  // 1: task.v1.Task.status:type_name -> task.v1.TaskStatus
	1,  // 2: task.v1.Task.priority:type_name -> task.v1.Priority
	22, // 3: task.v1.Task.due_date:type_name -> google.protobuf.Timestamp
	2,  // 4: task.v1.Task.recurrence_pattern:type_name -> task.v1.RecurrencePattern
	22, // 5: task.v1.Task.completed_at:type_name -> google.protobuf.Timestamp
	22, // 6: task.v1.Task.created_at:type_name -> google.protobuf.Timestamp
	22, // 7: task.v1.Task.updated_at:type_name -> google.protobuf.Timestamp
	22, // 8: task.v1.Project.created_at:type_name -> google.protobuf.Timestamp
	22, // 9: task.v1.Project.updated_at:type_name -> google.protobuf.Timestamp
	4,  // 10: task.v1.CreateProjectResponse.project:type_name -> task.v1.Project
	4,  // 11: task.v1.ListProjectsResponse.projects:type_name -> task.v1.Project
	1,  // 12: task.v1.CreateTaskRequest.priority:type_name -> task.v1.Priority
	22, // 13: task.v1.CreateTaskRequest.due_date:type_name -> google.protobuf.Timestamp
	3,  // 14: task.v1.CreateTaskResponse.task:type_name -> task.v1.Task
	3,  // 15: task.v1.GetTaskResponse.task:type_name -> task.v1.Task
	0,  // 16: task.v1.ListTasksRequest.status:type_name -> task.v1.TaskStatus
	3,  // 17: task.v1.ListTasksResponse.tasks:type_name -> task.v1.Task
	1,  // 18: task.v1.UpdateTaskRequest.priority:type_name -> task.v1.Priority
	22, // 19: task.v1.UpdateTaskRequest.due_date:type_name -> google.protobuf.Timestamp
	3,  // 20: task.v1.UpdateTaskResponse.task:type_name -> task.v1.Task
	0,  // 21: task.v1.UpdateTaskStatusRequest.status:type_name -> task.v1.TaskStatus
	3,  // 22: task.v1.UpdateTaskStatusResponse.task:type_name -> task.v1.Task
	3,  // 23: task.v1.SetTaskDependenciesResponse.task:type_name -> task.v1.Task
	5,  // 24: task.v1.TaskService.CreateProject:input_type -> task.v1.CreateProjectRequest
	7,  // 25: task.v1.TaskService.ListProjects:input_type -> task.v1.ListProjectsRequest
	9,  // 26: task.v1.TaskService.CreateTask:input_type -> task.v1.CreateTaskRequest
	11, // 27: task.v1.TaskService.GetTask:input_type -> task.v1.GetTaskRequest
	13, // 28: task.v1.TaskService.ListTasks:input_type -> task.v1.ListTasksRequest
	15, // 29: task.v1.TaskService.UpdateTask:input_type -> task.v1.UpdateTaskRequest
	17, // 30: task.v1.TaskService.UpdateTaskStatus:input_type -> task.v1.UpdateTaskStatusRequest
	19, // 31: task.v1.TaskService.SetTaskDependencies:input_type -> task.v1.SetTaskDependenciesRequest
	21, // 32: task.v1.TaskService.DeleteTask:input_type -> task.v1.DeleteTaskRequest
	6,  // 33: task.v1.TaskService.CreateProject:output_type -> task.v1.CreateProjectResponse
	8,  // 34: task.v1.TaskService.ListProjects:output_type -> task.v1.ListProjectsResponse
	10, // 35: task.v1.TaskService.CreateTask:output_type -> task.v1.CreateTaskResponse
	12, // 36: task.v1.TaskService.GetTask:output_type -> task.v1.GetTaskResponse
	14, // 37: task.v1.TaskService.ListTasks:output_type -> task.v1.ListTasksResponse
	16, // 38: task.v1.TaskService.UpdateTask:output_type -> task.v1.UpdateTaskResponse
	18, // 39: task.v1.TaskService.UpdateTaskStatus:output_type -> task.v1.UpdateTaskStatusResponse
	20, // 40: task.v1.TaskService.SetTaskDependencies:output_type -> task.v1.SetTaskDependenciesResponse
	23, // 41: task.v1.TaskService.DeleteTask:output_type -> google.protobuf.Empty
	33, // [33:42] is the sub-list for method output_type
	24, // [24:33] is the sub-list for method input_type
	24, // [24:24] is the sub-list for extension type_name
	24, // [24:24] is the sub-list for extension extendee
	0,  // [0:24] is the sub-list for field type_name
}

func init() { file_api_proto_task_v1_task_proto_init() }
func file_api_proto_task_v1_task_proto_init() {
	if File_api_proto_task_v1_task_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_api_proto_task_v1_task_proto_rawDesc), len(file_api_proto_task_v1_task_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_task_v1_task_proto_goTypes,
		DependencyIndexes: file_api_proto_task_v1_task_proto_depIdxs,
		EnumInfos:         file_api_proto_task_v1_task_proto_enumTypes,
		MessageInfos:      file_api_proto_task_v1_task_proto_msgTypes,
	}.Build()
	File_api_proto_task_v1_task_proto = out.File
	file_api_proto_task_v1_task_proto_goTypes = nil
	file_api_proto_task_v1_task_proto_depIdxs = nil
}
