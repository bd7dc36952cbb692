// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.8
// 	protoc        (unknown)
// source: api/proto/recurring/v1/recurring.proto

package recurringv1

import (
	generated "github.com/tanercay/goalgrid/api/proto/task/v1/generated"
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

type RecurringTaskTemplate struct {
	state             protoimpl.MessageState       `protogen:"open.v1"`
	Id                string                       `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId           string                       `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ProjectId         string                       `protobuf:"bytes,3,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name              string                       `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Description       string                       `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Priority          generated.Priority           `protobuf:"varint,6,opt,name=priority,proto3,enum=task.v1.Priority" json:"priority,omitempty"`
	Category          string                       `protobuf:"bytes,7,opt,name=category,proto3" json:"category,omitempty"`
	DueTime           string                       `protobuf:"bytes,8,opt,name=due_time,json=dueTime,proto3" json:"due_time,omitempty"`
	RecurrencePattern *generated.RecurrencePattern `protobuf:"bytes,9,opt,name=recurrence_pattern,json=recurrencePattern,proto3" json:"recurrence_pattern,omitempty"`
	IsActive          bool                         `protobuf:"varint,10,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	LastGeneratedDate *timestamppb.Timestamp       `protobuf:"bytes,11,opt,name=last_generated_date,json=lastGeneratedDate,proto3" json:"last_generated_date,omitempty"`
	CreatedAt         *timestamppb.Timestamp       `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         *timestamppb.Timestamp       `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *RecurringTaskTemplate) Reset() {
	*x = RecurringTaskTemplate{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecurringTaskTemplate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecurringTaskTemplate) ProtoMessage() {}

func (x *RecurringTaskTemplate) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecurringTaskTemplate.ProtoReflect.Descriptor instead.
func (*RecurringTaskTemplate) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{0}
}

func (x *RecurringTaskTemplate) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RecurringTaskTemplate) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *RecurringTaskTemplate) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *RecurringTaskTemplate) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RecurringTaskTemplate) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *RecurringTaskTemplate) GetPriority() generated.Priority {
	if x != nil {
		return x.Priority
	}
	return generated.Priority(0)
}

func (x *RecurringTaskTemplate) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *RecurringTaskTemplate) GetDueTime() string {
	if x != nil {
		return x.DueTime
	}
	return ""
}

func (x *RecurringTaskTemplate) GetRecurrencePattern() *generated.RecurrencePattern {
	if x != nil {
		return x.RecurrencePattern
	}
	return nil
}

func (x *RecurringTaskTemplate) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *RecurringTaskTemplate) GetLastGeneratedDate() *timestamppb.Timestamp {
	if x != nil {
		return x.LastGeneratedDate
	}
	return nil
}

func (x *RecurringTaskTemplate) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *RecurringTaskTemplate) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateTemplateRequest struct {
	state             protoimpl.MessageState       `protogen:"open.v1"`
	ProjectId         string                       `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name              string                       `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description       string                       `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Priority          generated.Priority           `protobuf:"varint,4,opt,name=priority,proto3,enum=task.v1.Priority" json:"priority,omitempty"`
	Category          string                       `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	DueTime           string                       `protobuf:"bytes,6,opt,name=due_time,json=dueTime,proto3" json:"due_time,omitempty"`
	RecurrencePattern *generated.RecurrencePattern `protobuf:"bytes,7,opt,name=recurrence_pattern,json=recurrencePattern,proto3" json:"recurrence_pattern,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *CreateTemplateRequest) Reset() {
	*x = CreateTemplateRequest{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTemplateRequest) ProtoMessage() {}

func (x *CreateTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTemplateRequest.ProtoReflect.Descriptor instead.
func (*CreateTemplateRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{1}
}

func (x *CreateTemplateRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *CreateTemplateRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateTemplateRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateTemplateRequest) GetPriority() generated.Priority {
	if x != nil {
		return x.Priority
	}
	return generated.Priority(0)
}

func (x *CreateTemplateRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CreateTemplateRequest) GetDueTime() string {
	if x != nil {
		return x.DueTime
	}
	return ""
}

func (x *CreateTemplateRequest) GetRecurrencePattern() *generated.RecurrencePattern {
	if x != nil {
		return x.RecurrencePattern
	}
	return nil
}

type CreateTemplateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Template      *RecurringTaskTemplate `protobuf:"bytes,1,opt,name=template,proto3" json:"template,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTemplateResponse) Reset() {
	*x = CreateTemplateResponse{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTemplateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTemplateResponse) ProtoMessage() {}

func (x *CreateTemplateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTemplateResponse.ProtoReflect.Descriptor instead.
func (*CreateTemplateResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{2}
}

func (x *CreateTemplateResponse) GetTemplate() *RecurringTaskTemplate {
	if x != nil {
		return x.Template
	}
	return nil
}

type GetTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTemplateRequest) Reset() {
	*x = GetTemplateRequest{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTemplateRequest) ProtoMessage() {}

func (x *GetTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTemplateRequest.ProtoReflect.Descriptor instead.
func (*GetTemplateRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{3}
}

func (x *GetTemplateRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetTemplateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Template      *RecurringTaskTemplate `protobuf:"bytes,1,opt,name=template,proto3" json:"template,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTemplateResponse) Reset() {
	*x = GetTemplateResponse{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTemplateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTemplateResponse) ProtoMessage() {}

func (x *GetTemplateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTemplateResponse.ProtoReflect.Descriptor instead.
func (*GetTemplateResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{4}
}

func (x *GetTemplateResponse) GetTemplate() *RecurringTaskTemplate {
	if x != nil {
		return x.Template
	}
	return nil
}

type ListTemplatesRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	IncludeInactive bool                   `protobuf:"varint,1,opt,name=include_inactive,json=includeInactive,proto3" json:"include_inactive,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListTemplatesRequest) Reset() {
	*x = ListTemplatesRequest{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesRequest) ProtoMessage() {}

func (x *ListTemplatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesRequest.ProtoReflect.Descriptor instead.
func (*ListTemplatesRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{5}
}

func (x *ListTemplatesRequest) GetIncludeInactive() bool {
	if x != nil {
		return x.IncludeInactive
	}
	return false
}

type ListTemplatesResponse struct {
	state         protoimpl.MessageState   `protogen:"open.v1"`
	Templates     []*RecurringTaskTemplate `protobuf:"bytes,1,rep,name=templates,proto3" json:"templates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTemplatesResponse) Reset() {
	*x = ListTemplatesResponse{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesResponse) ProtoMessage() {}

func (x *ListTemplatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesResponse.ProtoReflect.Descriptor instead.
func (*ListTemplatesResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{6}
}

func (x *ListTemplatesResponse) GetTemplates() []*RecurringTaskTemplate {
	if x != nil {
		return x.Templates
	}
	return nil
}

type UpdateTemplateRequest struct {
	state             protoimpl.MessageState       `protogen:"open.v1"`
	Id                string                       `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name              string                       `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description       string                       `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Priority          generated.Priority           `protobuf:"varint,4,opt,name=priority,proto3,enum=task.v1.Priority" json:"priority,omitempty"`
	Category          string                       `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	DueTime           string                       `protobuf:"bytes,6,opt,name=due_time,json=dueTime,proto3" json:"due_time,omitempty"`
	RecurrencePattern *generated.RecurrencePattern `protobuf:"bytes,7,opt,name=recurrence_pattern,json=recurrencePattern,proto3" json:"recurrence_pattern,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UpdateTemplateRequest) Reset() {
	*x = UpdateTemplateRequest{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTemplateRequest) ProtoMessage() {}

func (x *UpdateTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTemplateRequest.ProtoReflect.Descriptor instead.
func (*UpdateTemplateRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateTemplateRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateTemplateRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateTemplateRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateTemplateRequest) GetPriority() generated.Priority {
	if x != nil {
		return x.Priority
	}
	return generated.Priority(0)
}

func (x *UpdateTemplateRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *UpdateTemplateRequest) GetDueTime() string {
	if x != nil {
		return x.DueTime
	}
	return ""
}

func (x *UpdateTemplateRequest) GetRecurrencePattern() *generated.RecurrencePattern {
	if x != nil {
		return x.RecurrencePattern
	}
	return nil
}

type UpdateTemplateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Template      *RecurringTaskTemplate `protobuf:"bytes,1,opt,name=template,proto3" json:"template,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTemplateResponse) Reset() {
	*x = UpdateTemplateResponse{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTemplateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTemplateResponse) ProtoMessage() {}

func (x *UpdateTemplateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTemplateResponse.ProtoReflect.Descriptor instead.
func (*UpdateTemplateResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateTemplateResponse) GetTemplate() *RecurringTaskTemplate {
	if x != nil {
		return x.Template
	}
	return nil
}

type SetTemplateActiveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	IsActive      bool                   `protobuf:"varint,2,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTemplateActiveRequest) Reset() {
	*x = SetTemplateActiveRequest{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTemplateActiveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTemplateActiveRequest) ProtoMessage() {}

func (x *SetTemplateActiveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTemplateActiveRequest.ProtoReflect.Descriptor instead.
func (*SetTemplateActiveRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{9}
}

func (x *SetTemplateActiveRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SetTemplateActiveRequest) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type SetTemplateActiveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Template      *RecurringTaskTemplate `protobuf:"bytes,1,opt,name=template,proto3" json:"template,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTemplateActiveResponse) Reset() {
	*x = SetTemplateActiveResponse{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTemplateActiveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTemplateActiveResponse) ProtoMessage() {}

func (x *SetTemplateActiveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTemplateActiveResponse.ProtoReflect.Descriptor instead.
func (*SetTemplateActiveResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{10}
}

func (x *SetTemplateActiveResponse) GetTemplate() *RecurringTaskTemplate {
	if x != nil {
		return x.Template
	}
	return nil
}

type DeleteTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTemplateRequest) Reset() {
	*x = DeleteTemplateRequest{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTemplateRequest) ProtoMessage() {}

func (x *DeleteTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTemplateRequest.ProtoReflect.Descriptor instead.
func (*DeleteTemplateRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteTemplateRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

// GenerateInstances is the manual trigger: same algorithm as the scheduled
// pass, restricted to one template.
type GenerateInstancesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	AsOfDate      *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=as_of_date,json=asOfDate,proto3" json:"as_of_date,omitempty"` // defaults to today
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateInstancesRequest) Reset() {
	*x = GenerateInstancesRequest{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateInstancesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateInstancesRequest) ProtoMessage() {}

func (x *GenerateInstancesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateInstancesRequest.ProtoReflect.Descriptor instead.
func (*GenerateInstancesRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{12}
}

func (x *GenerateInstancesRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *GenerateInstancesRequest) GetAsOfDate() *timestamppb.Timestamp {
	if x != nil {
		return x.AsOfDate
	}
	return nil
}

type GenerateInstancesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*generated.Task      `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateInstancesResponse) Reset() {
	*x = GenerateInstancesResponse{}
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateInstancesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateInstancesResponse) ProtoMessage() {}

func (x *GenerateInstancesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_recurring_v1_recurring_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateInstancesResponse.ProtoReflect.Descriptor instead.
func (*GenerateInstancesResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_recurring_v1_recurring_proto_rawDescGZIP(), []int{13}
}

func (x *GenerateInstancesResponse) GetTasks() []*generated.Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

var File_api_proto_recurring_v1_recurring_proto protoreflect.FileDescriptor

const file_api_proto_recurring_v1_recurring_proto_rawDesc = "" +
	"\n" +
	"&api/proto/recurring/v1/recurring.proto\x12\frecurring.v1\x1a\x1bgoogle/protobuf/empty.proto\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1capi/proto/task/v1/task.proto\"\xa7\x04\n" +
	"\x15RecurringTaskTemplate\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x03 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x04 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12-\n" +
	"\bpriority\x18\x06 \x01(\x0e2\x11.task.v1.PriorityR\bpriority\x12\x1a\n" +
	"\bcategory\x18\a \x01(\tR\bcategory\x12\x19\n" +
	"\bdue_time\x18\b \x01(\tR\adueTime\x12I\n" +
	"\x12recurrence_pattern\x18\t \x01(\v2\x1a.task.v1.RecurrencePatternR\x11recurrencePattern\x12\x1b\n" +
	"\tis_active\x18\n" +
	" \x01(\bR\bisActive\x12J\n" +
	"\x13last_generated_date\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\x11lastGeneratedDate\x129\n" +
	"\n" +
	"created_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x9d\x02\n" +
	"\x15CreateTemplateRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12-\n" +
	"\bpriority\x18\x04 \x01(\x0e2\x11.task.v1.PriorityR\bpriority\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x19\n" +
	"\bdue_time\x18\x06 \x01(\tR\adueTime\x12I\n" +
	"\x12recurrence_pattern\x18\a \x01(\v2\x1a.task.v1.RecurrencePatternR\x11recurrencePattern\"Y\n" +
	"\x16CreateTemplateResponse\x12?\n" +
	"\btemplate\x18\x01 \x01(\v2#.recurring.v1.RecurringTaskTemplateR\btemplate\"$\n" +
	"\x12GetTemplateRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"V\n" +
	"\x13GetTemplateResponse\x12?\n" +
	"\btemplate\x18\x01 \x01(\v2#.recurring.v1.RecurringTaskTemplateR\btemplate\"A\n" +
	"\x14ListTemplatesRequest\x12)\n" +
	"\x10include_inactive\x18\x01 \x01(\bR\x0fincludeInactive\"Z\n" +
	"\x15ListTemplatesResponse\x12A\n" +
	"\ttemplates\x18\x01 \x03(\v2#.recurring.v1.RecurringTaskTemplateR\ttemplates\"\x8e\x02\n" +
	"\x15UpdateTemplateRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12-\n" +
	"\bpriority\x18\x04 \x01(\x0e2\x11.task.v1.PriorityR\bpriority\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x19\n" +
	"\bdue_time\x18\x06 \x01(\tR\adueTime\x12I\n" +
	"\x12recurrence_pattern\x18\a \x01(\v2\x1a.task.v1.RecurrencePatternR\x11recurrencePattern\"Y\n" +
	"\x16UpdateTemplateResponse\x12?\n" +
	"\btemplate\x18\x01 \x01(\v2#.recurring.v1.RecurringTaskTemplateR\btemplate\"G\n" +
	"\x18SetTemplateActiveRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tis_active\x18\x02 \x01(\bR\bisActive\"\\\n" +
	"\x19SetTemplateActiveResponse\x12?\n" +
	"\btemplate\x18\x01 \x01(\v2#.recurring.v1.RecurringTaskTemplateR\btemplate\"'\n" +
	"\x15DeleteTemplateRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"u\n" +
	"\x18GenerateInstancesRequest\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\x128\n" +
	"\n" +
	"as_of_date\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\basOfDate\"@\n" +
	"\x19GenerateInstancesResponse\x12#\n" +
	"\x05tasks\x18\x01 \x03(\v2\r.task.v1.TaskR\x05tasks2\x95\x05\n" +
	"\x10RecurringService\x12[\n" +
	"\x0eCreateTemplate\x12#.recurring.v1.CreateTemplateRequest\x1a$.recurring.v1.CreateTemplateResponse\x12R\n" +
	"\vGetTemplate\x12 .recurring.v1.GetTemplateRequest\x1a!.recurring.v1.GetTemplateResponse\x12X\n" +
	"\rListTemplates\x12\".recurring.v1.ListTemplatesRequest\x1a#.recurring.v1.ListTemplatesResponse\x12[\n" +
	"\x0eUpdateTemplate\x12#.recurring.v1.UpdateTemplateRequest\x1a$.recurring.v1.UpdateTemplateResponse\x12d\n" +
	"\x11SetTemplateActive\x12&.recurring.v1.SetTemplateActiveRequest\x1a'.recurring.v1.SetTemplateActiveResponse\x12M\n" +
	"\x0eDeleteTemplate\x12#.recurring.v1.DeleteTemplateRequest\x1a\x16.google.protobuf.Empty\x12d\n" +
	"\x11GenerateInstances\x12&.recurring.v1.GenerateInstancesRequest\x1a'.recurring.v1.GenerateInstancesResponseBKZIgithub.com/tanercay/goalgrid/api/proto/recurring/v1/generated;recurringv1b\x06proto3"

var (
	file_api_proto_recurring_v1_recurring_proto_rawDescOnce sync.Once
	file_api_proto_recurring_v1_recurring_proto_rawDescData []byte
)

func file_api_proto_recurring_v1_recurring_proto_rawDescGZIP() []byte {
	file_api_proto_recurring_v1_recurring_proto_rawDescOnce.Do(func() {
		file_api_proto_recurring_v1_recurring_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_api_proto_recurring_v1_recurring_proto_rawDesc), len(file_api_proto_recurring_v1_recurring_proto_rawDesc)))
	})
	return file_api_proto_recurring_v1_recurring_proto_rawDescData
}

var file_api_proto_recurring_v1_recurring_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_api_proto_recurring_v1_recurring_proto_goTypes = []any{
	(*RecurringTaskTemplate)(nil),       // 0: recurring.v1.RecurringTaskTemplate
	(*CreateTemplateRequest)(nil),       // 1: recurring.v1.CreateTemplateRequest
	(*CreateTemplateResponse)(nil),      // 2: recurring.v1.CreateTemplateResponse
	(*GetTemplateRequest)(nil),          // 3: recurring.v1.GetTemplateRequest
	(*GetTemplateResponse)(nil),         // 4: recurring.v1.GetTemplateResponse
	(*ListTemplatesRequest)(nil),        // 5: recurring.v1.ListTemplatesRequest
	(*ListTemplatesResponse)(nil),       // 6: recurring.v1.ListTemplatesResponse
	(*UpdateTemplateRequest)(nil),       // 7: recurring.v1.UpdateTemplateRequest
	(*UpdateTemplateResponse)(nil),      // 8: recurring.v1.UpdateTemplateResponse
	(*SetTemplateActiveRequest)(nil),    // 9: recurring.v1.SetTemplateActiveRequest
	(*SetTemplateActiveResponse)(nil),   // 10: recurring.v1.SetTemplateActiveResponse
	(*DeleteTemplateRequest)(nil),       // 11: recurring.v1.DeleteTemplateRequest
	(*GenerateInstancesRequest)(nil),    // 12: recurring.v1.GenerateInstancesRequest
	(*GenerateInstancesResponse)(nil),   // 13: recurring.v1.GenerateInstancesResponse
	(generated.Priority)(0),             // 14: task.v1.Priority
	(*generated.RecurrencePattern)(nil), // 15: task.v1.RecurrencePattern
	(*timestamppb.Timestamp)(nil),       // 16: google.protobuf.Timestamp
	(*generated.Task)(nil),              // 17: task.v1.Task
	(*emptypb.Empty)(nil),               // 18: google.protobuf.Empty
}
var file_api_proto_recurring_v1_recurring_proto_depIdxs = []int32{
	14, // 0: recurring.v1.RecurringTaskTemplate.priority:type_name -> task.v1.Priority
	15, // 1: recurring.v1.RecurringTaskTemplate.recurrence_pattern:type_name -> task.v1.RecurrencePattern
	16, // 2: recurring.v1.RecurringTaskTemplate.last_generated_date:type_name -> google.protobuf.Timestamp
	16, // 3: recurring.v1.RecurringTaskTemplate.created_at:type_name -> google.protobuf.Timestamp
	16, // 4: recurring.v1.RecurringTaskTemplate.updated_at:type_name -> google.protobuf.Timestamp
	14, // 5: recurring.v1.CreateTemplateRequest.priority:type_name -> task.v1.Priority
	15, // 6: recurring.v1.CreateTemplateRequest.recurrence_pattern:type_name -> task.v1.RecurrencePattern
	0,  // 7: recurring.v1.CreateTemplateResponse.template:type_name -> recurring.v1.RecurringTaskTemplate
	0,  // 8: recurring.v1.GetTemplateResponse.template:type_name -> recurring.v1.RecurringTaskTemplate
	0,  // 9: recurring.v1.ListTemplatesResponse.templates:type_name -> recurring.v1.RecurringTaskTemplate
	14, // 10: recurring.v1.UpdateTemplateRequest.priority:type_name -> task.v1.Priority
	15, // 11: recurring.v1.UpdateTemplateRequest.recurrence_pattern:type_name -> task.v1.RecurrencePattern
	0,  // 12: recurring.v1.UpdateTemplateResponse.template:type_name -> recurring.v1.RecurringTaskTemplate
	0,  // 13: recurring.v1.SetTemplateActiveResponse.template:type_name -> recurring.v1.RecurringTaskTemplate
	16, // 14: recurring.v1.GenerateInstancesRequest.as_of_date:type_name -> google.protobuf.Timestamp
	17, // 15: recurring.v1.GenerateInstancesResponse.tasks:type_name -> task.v1.Task
	1,  // 16: recurring.v1.RecurringService.CreateTemplate:input_type -> recurring.v1.CreateTemplateRequest
	3,  // 17: recurring.v1.RecurringService.GetTemplate:input_type -> recurring.v1.GetTemplateRequest
	5,  // 18: recurring.v1.RecurringService.ListTemplates:input_type -> recurring.v1.ListTemplatesRequest
	7,  // 19: recurring.v1.RecurringService.UpdateTemplate:input_type -> recurring.v1.UpdateTemplateRequest
	9,  // 20: recurring.v1.RecurringService.SetTemplateActive:input_type -> recurring.v1.SetTemplateActiveRequest
	11, // 21: recurring.v1.RecurringService.DeleteTemplate:input_type -> recurring.v1.DeleteTemplateRequest
	12, // 22: recurring.v1.RecurringService.GenerateInstances:input_type -> recurring.v1.GenerateInstancesRequest
	2,  // 23: recurring.v1.RecurringService.CreateTemplate:output_type -> recurring.v1.CreateTemplateResponse
	4,  // 24: recurring.v1.RecurringService.GetTemplate:output_type -> recurring.v1.GetTemplateResponse
	6,  // 25: recurring.v1.RecurringService.ListTemplates:output_type -> recurring.v1.ListTemplatesResponse
	8,  // 26: recurring.v1.RecurringService.UpdateTemplate:output_type -> recurring.v1.UpdateTemplateResponse
	10, // 27: recurring.v1.RecurringService.SetTemplateActive:output_type -> recurring.v1.SetTemplateActiveResponse
	18, // 28: recurring.v1.RecurringService.DeleteTemplate:output_type -> google.protobuf.Empty
	13, // 29: recurring.v1.RecurringService.GenerateInstances:output_type -> recurring.v1.GenerateInstancesResponse
	23, // [23:30] is the sub-list for method output_type
	16, // [16:23] is the sub-list for method input_type
	16, // [16:16] is the sub-list for extension type_name
	16, // [16:16] is the sub-list for extension extendee
	0,  // [0:16] is the sub-list for field type_name
}

func init() { file_api_proto_recurring_v1_recurring_proto_init() }
func file_api_proto_recurring_v1_recurring_proto_init() {
	if File_api_proto_recurring_v1_recurring_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_api_proto_recurring_v1_recurring_proto_rawDesc), len(file_api_proto_recurring_v1_recurring_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_recurring_v1_recurring_proto_goTypes,
		DependencyIndexes: file_api_proto_recurring_v1_recurring_proto_depIdxs,
		MessageInfos:      file_api_proto_recurring_v1_recurring_proto_msgTypes,
	}.Build()
	File_api_proto_recurring_v1_recurring_proto = out.File
	file_api_proto_recurring_v1_recurring_proto_goTypes = nil
	file_api_proto_recurring_v1_recurring_proto_depIdxs = nil
}
