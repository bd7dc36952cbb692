// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.8
// 	protoc        (unknown)
// source: api/proto/board/v1/board.proto

package boardv1

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

// KanbanColumn is a pure projection of task status under a fixed map.
type KanbanColumn int32

const (
	KanbanColumn_KANBAN_COLUMN_UNSPECIFIED KanbanColumn = 0
	KanbanColumn_KANBAN_COLUMN_TO_DO       KanbanColumn = 1
	KanbanColumn_KANBAN_COLUMN_IN_PROGRESS KanbanColumn = 2
	KanbanColumn_KANBAN_COLUMN_REVIEW      KanbanColumn = 3
	KanbanColumn_KANBAN_COLUMN_DONE        KanbanColumn = 4
)

// Enum value maps for KanbanColumn.
var (
	KanbanColumn_name = map[int32]string{
		0: "KANBAN_COLUMN_UNSPECIFIED",
		1: "KANBAN_COLUMN_TO_DO",
		2: "KANBAN_COLUMN_IN_PROGRESS",
		3: "KANBAN_COLUMN_REVIEW",
		4: "KANBAN_COLUMN_DONE",
	}
	KanbanColumn_value = map[string]int32{
		"KANBAN_COLUMN_UNSPECIFIED": 0,
		"KANBAN_COLUMN_TO_DO":       1,
		"KANBAN_COLUMN_IN_PROGRESS": 2,
		"KANBAN_COLUMN_REVIEW":      3,
		"KANBAN_COLUMN_DONE":        4,
	}
)

func (x KanbanColumn) Enum() *KanbanColumn {
	p := new(KanbanColumn)
	*p = x
	return p
}

func (x KanbanColumn) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (KanbanColumn) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_board_v1_board_proto_enumTypes[0].Descriptor()
}

func (KanbanColumn) Type() protoreflect.EnumType {
	return &file_api_proto_board_v1_board_proto_enumTypes[0]
}

func (x KanbanColumn) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use KanbanColumn.Descriptor instead.
func (KanbanColumn) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_board_v1_board_proto_rawDescGZIP(), []int{0}
}

type GetBoardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBoardRequest) Reset() {
	*x = GetBoardRequest{}
	mi := &file_api_proto_board_v1_board_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBoardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBoardRequest) ProtoMessage() {}

func (x *GetBoardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_board_v1_board_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBoardRequest.ProtoReflect.Descriptor instead.
func (*GetBoardRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_board_v1_board_proto_rawDescGZIP(), []int{0}
}

func (x *GetBoardRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type GetBoardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ToDo          []*generated.Task      `protobuf:"bytes,1,rep,name=to_do,json=toDo,proto3" json:"to_do,omitempty"`
	InProgress    []*generated.Task      `protobuf:"bytes,2,rep,name=in_progress,json=inProgress,proto3" json:"in_progress,omitempty"`
	Review        []*generated.Task      `protobuf:"bytes,3,rep,name=review,proto3" json:"review,omitempty"`
	Done          []*generated.Task      `protobuf:"bytes,4,rep,name=done,proto3" json:"done,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBoardResponse) Reset() {
	*x = GetBoardResponse{}
	mi := &file_api_proto_board_v1_board_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBoardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBoardResponse) ProtoMessage() {}

func (x *GetBoardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_board_v1_board_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBoardResponse.ProtoReflect.Descriptor instead.
func (*GetBoardResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_board_v1_board_proto_rawDescGZIP(), []int{1}
}

func (x *GetBoardResponse) GetToDo() []*generated.Task {
	if x != nil {
		return x.ToDo
	}
	return nil
}

func (x *GetBoardResponse) GetInProgress() []*generated.Task {
	if x != nil {
		return x.InProgress
	}
	return nil
}

func (x *GetBoardResponse) GetReview() []*generated.Task {
	if x != nil {
		return x.Review
	}
	return nil
}

func (x *GetBoardResponse) GetDone() []*generated.Task {
	if x != nil {
		return x.Done
	}
	return nil
}

// MoveTask is a drag-and-drop column move: semantically identical to a
// status change and rejected the same way when gated.
type MoveTaskRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TaskId         string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	TargetColumn   KanbanColumn           `protobuf:"varint,2,opt,name=target_column,json=targetColumn,proto3,enum=board.v1.KanbanColumn" json:"target_column,omitempty"`
	TargetPosition int32                  `protobuf:"varint,3,opt,name=target_position,json=targetPosition,proto3" json:"target_position,omitempty"` // 0-based position among the destination column's tasks
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MoveTaskRequest) Reset() {
	*x = MoveTaskRequest{}
	mi := &file_api_proto_board_v1_board_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MoveTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MoveTaskRequest) ProtoMessage() {}

func (x *MoveTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_board_v1_board_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MoveTaskRequest.ProtoReflect.Descriptor instead.
func (*MoveTaskRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_board_v1_board_proto_rawDescGZIP(), []int{2}
}

func (x *MoveTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *MoveTaskRequest) GetTargetColumn() KanbanColumn {
	if x != nil {
		return x.TargetColumn
	}
	return KanbanColumn_KANBAN_COLUMN_UNSPECIFIED
}

func (x *MoveTaskRequest) GetTargetPosition() int32 {
	if x != nil {
		return x.TargetPosition
	}
	return 0
}

type MoveTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *generated.Task        `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MoveTaskResponse) Reset() {
	*x = MoveTaskResponse{}
	mi := &file_api_proto_board_v1_board_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MoveTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MoveTaskResponse) ProtoMessage() {}

func (x *MoveTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_board_v1_board_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MoveTaskResponse.ProtoReflect.Descriptor instead.
func (*MoveTaskResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_board_v1_board_proto_rawDescGZIP(), []int{3}
}

func (x *MoveTaskResponse) GetTask() *generated.Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type ReorderTasksRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ProjectId      string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	OrderedTaskIds []string               `protobuf:"bytes,2,rep,name=ordered_task_ids,json=orderedTaskIds,proto3" json:"ordered_task_ids,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ReorderTasksRequest) Reset() {
	*x = ReorderTasksRequest{}
	mi := &file_api_proto_board_v1_board_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReorderTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReorderTasksRequest) ProtoMessage() {}

func (x *ReorderTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_board_v1_board_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReorderTasksRequest.ProtoReflect.Descriptor instead.
func (*ReorderTasksRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_board_v1_board_proto_rawDescGZIP(), []int{4}
}

func (x *ReorderTasksRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ReorderTasksRequest) GetOrderedTaskIds() []string {
	if x != nil {
		return x.OrderedTaskIds
	}
	return nil
}

type GetBoardStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBoardStatsRequest) Reset() {
	*x = GetBoardStatsRequest{}
	mi := &file_api_proto_board_v1_board_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBoardStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBoardStatsRequest) ProtoMessage() {}

func (x *GetBoardStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_board_v1_board_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBoardStatsRequest.ProtoReflect.Descriptor instead.
func (*GetBoardStatsRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_board_v1_board_proto_rawDescGZIP(), []int{5}
}

func (x *GetBoardStatsRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

// RecentlyCompletedTask is a light entry for the "recently done" feed next
// to the column counts; the full task lives behind TaskService.GetTask.
type RecentlyCompletedTask struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CompletedAt   *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecentlyCompletedTask) Reset() {
	*x = RecentlyCompletedTask{}
	mi := &file_api_proto_board_v1_board_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecentlyCompletedTask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecentlyCompletedTask) ProtoMessage() {}

func (x *RecentlyCompletedTask) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_board_v1_board_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecentlyCompletedTask.ProtoReflect.Descriptor instead.
func (*RecentlyCompletedTask) Descriptor() ([]byte, []int) {
	return file_api_proto_board_v1_board_proto_rawDescGZIP(), []int{6}
}

func (x *RecentlyCompletedTask) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *RecentlyCompletedTask) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RecentlyCompletedTask) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

type GetBoardStatsResponse struct {
	state             protoimpl.MessageState   `protogen:"open.v1"`
	ToDoCount         int32                    `protobuf:"varint,1,opt,name=to_do_count,json=toDoCount,proto3" json:"to_do_count,omitempty"`
	InProgressCount   int32                    `protobuf:"varint,2,opt,name=in_progress_count,json=inProgressCount,proto3" json:"in_progress_count,omitempty"`
	ReviewCount       int32                    `protobuf:"varint,3,opt,name=review_count,json=reviewCount,proto3" json:"review_count,omitempty"`
	DoneCount         int32                    `protobuf:"varint,4,opt,name=done_count,json=doneCount,proto3" json:"done_count,omitempty"`
	TotalCount        int32                    `protobuf:"varint,5,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	CompletionPercent float64                  `protobuf:"fixed64,6,opt,name=completion_percent,json=completionPercent,proto3" json:"completion_percent,omitempty"`
	RecentlyCompleted []*RecentlyCompletedTask `protobuf:"bytes,7,rep,name=recently_completed,json=recentlyCompleted,proto3" json:"recently_completed,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetBoardStatsResponse) Reset() {
	*x = GetBoardStatsResponse{}
	mi := &file_api_proto_board_v1_board_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBoardStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBoardStatsResponse) ProtoMessage() {}

func (x *GetBoardStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_board_v1_board_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBoardStatsResponse.ProtoReflect.Descriptor instead.
func (*GetBoardStatsResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_board_v1_board_proto_rawDescGZIP(), []int{7}
}

func (x *GetBoardStatsResponse) GetToDoCount() int32 {
	if x != nil {
		return x.ToDoCount
	}
	return 0
}

func (x *GetBoardStatsResponse) GetInProgressCount() int32 {
	if x != nil {
		return x.InProgressCount
	}
	return 0
}

func (x *GetBoardStatsResponse) GetReviewCount() int32 {
	if x != nil {
		return x.ReviewCount
	}
	return 0
}

func (x *GetBoardStatsResponse) GetDoneCount() int32 {
	if x != nil {
		return x.DoneCount
	}
	return 0
}

func (x *GetBoardStatsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *GetBoardStatsResponse) GetCompletionPercent() float64 {
	if x != nil {
		return x.CompletionPercent
	}
	return 0
}

func (x *GetBoardStatsResponse) GetRecentlyCompleted() []*RecentlyCompletedTask {
	if x != nil {
		return x.RecentlyCompleted
	}
	return nil
}

var File_api_proto_board_v1_board_proto protoreflect.FileDescriptor

const file_api_proto_board_v1_board_proto_rawDesc = "" +
	"\n" +
	"\x1eapi/proto/board/v1/board.proto\x12\bboard.v1\x1a\x1bgoogle/protobuf/empty.proto\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1capi/proto/task/v1/task.proto\"0\n" +
	"\x0fGetBoardRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"\xb0\x01\n" +
	"\x10GetBoardResponse\x12\"\n" +
	"\x05to_do\x18\x01 \x03(\v2\r.task.v1.TaskR\x04toDo\x12.\n" +
	"\vin_progress\x18\x02 \x03(\v2\r.task.v1.TaskR\n" +
	"inProgress\x12%\n" +
	"\x06review\x18\x03 \x03(\v2\r.task.v1.TaskR\x06review\x12!\n" +
	"\x04done\x18\x04 \x03(\v2\r.task.v1.TaskR\x04done\"\x90\x01\n" +
	"\x0fMoveTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12;\n" +
	"\rtarget_column\x18\x02 \x01(\x0e2\x16.board.v1.KanbanColumnR\ftargetColumn\x12'\n" +
	"\x0ftarget_position\x18\x03 \x01(\x05R\x0etargetPosition\"5\n" +
	"\x10MoveTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"^\n" +
	"\x13ReorderTasksRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12(\n" +
	"\x10ordered_task_ids\x18\x02 \x03(\tR\x0eorderedTaskIds\"5\n" +
	"\x14GetBoardStatsRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"\x83\x01\n" +
	"\x15RecentlyCompletedTask\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12=\n" +
	"\fcompleted_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\"\xc5\x02\n" +
	"\x15GetBoardStatsResponse\x12\x1e\n" +
	"\vto_do_count\x18\x01 \x01(\x05R\ttoDoCount\x12*\n" +
	"\x11in_progress_count\x18\x02 \x01(\x05R\x0finProgressCount\x12!\n" +
	"\freview_count\x18\x03 \x01(\x05R\vreviewCount\x12\x1d\n" +
	"\n" +
	"done_count\x18\x04 \x01(\x05R\tdoneCount\x12\x1f\n" +
	"\vtotal_count\x18\x05 \x01(\x05R\n" +
	"totalCount\x12-\n" +
	"\x12completion_percent\x18\x06 \x01(\x01R\x11completionPercent\x12N\n" +
	"\x12recently_completed\x18\a \x03(\v2\x1f.board.v1.RecentlyCompletedTaskR\x11recentlyCompleted*\x97\x01\n" +
	"\fKanbanColumn\x12\x1d\n" +
	"\x19KANBAN_COLUMN_UNSPECIFIED\x10\x00\x12\x17\n" +
	"\x13KANBAN_COLUMN_TO_DO\x10\x01\x12\x1d\n" +
	"\x19KANBAN_COLUMN_IN_PROGRESS\x10\x02\x12\x18\n" +
	"\x14KANBAN_COLUMN_REVIEW\x10\x03\x12\x16\n" +
	"\x12KANBAN_COLUMN_DONE\x10\x042\xad\x02\n" +
	"\fBoardService\x12A\n" +
	"\bGetBoard\x12\x19.board.v1.GetBoardRequest\x1a\x1a.board.v1.GetBoardResponse\x12A\n" +
	"\bMoveTask\x12\x19.board.v1.MoveTaskRequest\x1a\x1a.board.v1.MoveTaskResponse\x12E\n" +
	"\fReorderTasks\x12\x1d.board.v1.ReorderTasksRequest\x1a\x16.google.protobuf.Empty\x12P\n" +
	"\rGetBoardStats\x12\x1e.board.v1.GetBoardStatsRequest\x1a\x1f.board.v1.GetBoardStatsResponseBCZAgithub.com/tanercay/goalgrid/api/proto/board/v1/generated;boardv1b\x06proto3"

var (
	file_api_proto_board_v1_board_proto_rawDescOnce sync.Once
	file_api_proto_board_v1_board_proto_rawDescData []byte
)

func file_api_proto_board_v1_board_proto_rawDescGZIP() []byte {
	file_api_proto_board_v1_board_proto_rawDescOnce.Do(func() {
		file_api_proto_board_v1_board_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_api_proto_board_v1_board_proto_rawDesc), len(file_api_proto_board_v1_board_proto_rawDesc)))
	})
	return file_api_proto_board_v1_board_proto_rawDescData
}

var file_api_proto_board_v1_board_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_api_proto_board_v1_board_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_api_proto_board_v1_board_proto_goTypes = []any{
	(KanbanColumn)(0),             // 0: board.v1.KanbanColumn
	(*GetBoardRequest)(nil),       // 1: board.v1.GetBoardRequest
	(*GetBoardResponse)(nil),      // 2: board.v1.GetBoardResponse
	(*MoveTaskRequest)(nil),       // 3: board.v1.MoveTaskRequest
	(*MoveTaskResponse)(nil),      // 4: board.v1.MoveTaskResponse
	(*ReorderTasksRequest)(nil),   // 5: board.v1.ReorderTasksRequest
	(*GetBoardStatsRequest)(nil),  // 6: board.v1.GetBoardStatsRequest
	(*RecentlyCompletedTask)(nil), // 7: board.v1.RecentlyCompletedTask
	(*GetBoardStatsResponse)(nil), // 8: board.v1.GetBoardStatsResponse
	(*generated.Task)(nil),        // 9: task.v1.Task
	(*timestamppb.Timestamp)(nil), // 10: google.protobuf.Timestamp
	(*emptypb.Empty)(nil),         // 11: google.protobuf.Empty
}
var file_api_proto_board_v1_board_proto_depIdxs = []int32{
	9,  // 0: board.v1.GetBoardResponse.to_do:type_name -> task.v1.Task
	9,  // 1: board.v1.GetBoardResponse.in_progress:type_name -> task.v1.Task
	9,  // 2: board.v1.GetBoardResponse.review:type_name -> task.v1.Task
	9,  // 3: board.v1.GetBoardResponse.done:type_name -> task.v1.Task
	0,  // 4: board.v1.MoveTaskRequest.target_column:type_name -> board.v1.KanbanColumn
	9,  // 5: board.v1.MoveTaskResponse.task:type_name -> task.v1.Task
	10, // 6: board.v1.RecentlyCompletedTask.completed_at:type_name -> google.protobuf.Timestamp
	7,  // 7: board.v1.GetBoardStatsResponse.recently_completed:type_name -> board.v1.RecentlyCompletedTask
	1,  // 8: board.v1.BoardService.GetBoard:input_type -> board.v1.GetBoardRequest
	3,  // 9: board.v1.BoardService.MoveTask:input_type -> board.v1.MoveTaskRequest
	5,  // 10: board.v1.BoardService.ReorderTasks:input_type -> board.v1.ReorderTasksRequest
	6,  // 11: board.v1.BoardService.GetBoardStats:input_type -> board.v1.GetBoardStatsRequest
	2,  // 12: board.v1.BoardService.GetBoard:output_type -> board.v1.GetBoardResponse
	4,  // 13: board.v1.BoardService.MoveTask:output_type -> board.v1.MoveTaskResponse
	11, // 14: board.v1.BoardService.ReorderTasks:output_type -> google.protobuf.Empty
	8,  // 15: board.v1.BoardService.GetBoardStats:output_type -> board.v1.GetBoardStatsResponse
	12, // [12:16] is the sub-list for method output_type
	8,  // [8:12] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_api_proto_board_v1_board_proto_init() }
func file_api_proto_board_v1_board_proto_init() {
	if File_api_proto_board_v1_board_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_api_proto_board_v1_board_proto_rawDesc), len(file_api_proto_board_v1_board_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_board_v1_board_proto_goTypes,
		DependencyIndexes: file_api_proto_board_v1_board_proto_depIdxs,
		EnumInfos:         file_api_proto_board_v1_board_proto_enumTypes,
		MessageInfos:      file_api_proto_board_v1_board_proto_msgTypes,
	}.Build()
	File_api_proto_board_v1_board_proto = out.File
	file_api_proto_board_v1_board_proto_goTypes = nil
	file_api_proto_board_v1_board_proto_depIdxs = nil
}
