// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: jobs/v1/jobs.proto

package jobsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Address       string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	Services      string                 `protobuf:"bytes,5,opt,name=services,proto3" json:"services,omitempty"`
	Price         string                 `protobuf:"bytes,6,opt,name=price,proto3" json:"price,omitempty"`
	Balance       string                 `protobuf:"bytes,7,opt,name=balance,proto3" json:"balance,omitempty"`
	NextDue       string                 `protobuf:"bytes,8,opt,name=next_due,json=nextDue,proto3" json:"next_due,omitempty"`
	Frequency     string                 `protobuf:"bytes,9,opt,name=frequency,proto3" json:"frequency,omitempty"`
	PaymentMethod string                 `protobuf:"bytes,10,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	Notes         string                 `protobuf:"bytes,11,opt,name=notes,proto3" json:"notes,omitempty"`
	Status        string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	// due_label and due_style are computed against the server's current date
	// at response time and are never persisted.
	DueLabel      string `protobuf:"bytes,13,opt,name=due_label,json=dueLabel,proto3" json:"due_label,omitempty"`
	DueStyle      string `protobuf:"bytes,14,opt,name=due_style,json=dueStyle,proto3" json:"due_style,omitempty"`
	CreatedAt     string `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Job) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Job) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Job) GetServices() string {
	if x != nil {
		return x.Services
	}
	return ""
}

func (x *Job) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *Job) GetBalance() string {
	if x != nil {
		return x.Balance
	}
	return ""
}

func (x *Job) GetNextDue() string {
	if x != nil {
		return x.NextDue
	}
	return ""
}

func (x *Job) GetFrequency() string {
	if x != nil {
		return x.Frequency
	}
	return ""
}

func (x *Job) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *Job) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetDueLabel() string {
	if x != nil {
		return x.DueLabel
	}
	return ""
}

func (x *Job) GetDueStyle() string {
	if x != nil {
		return x.DueStyle
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Customer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Reference     string                 `protobuf:"bytes,2,opt,name=reference,proto3" json:"reference,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Address       string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	Phone         string                 `protobuf:"bytes,5,opt,name=phone,proto3" json:"phone,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Customer) Reset() {
	*x = Customer{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Customer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Customer) ProtoMessage() {}

func (x *Customer) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Customer.ProtoReflect.Descriptor instead.
func (*Customer) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{1}
}

func (x *Customer) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Customer) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *Customer) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Customer) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Customer) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Customer) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Customer) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ImportBatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SourceName    string                 `protobuf:"bytes,2,opt,name=source_name,json=sourceName,proto3" json:"source_name,omitempty"`
	RowsScanned   int32                  `protobuf:"varint,3,opt,name=rows_scanned,json=rowsScanned,proto3" json:"rows_scanned,omitempty"`
	RowsRejected  int32                  `protobuf:"varint,4,opt,name=rows_rejected,json=rowsRejected,proto3" json:"rows_rejected,omitempty"`
	RowsPersisted int32                  `protobuf:"varint,5,opt,name=rows_persisted,json=rowsPersisted,proto3" json:"rows_persisted,omitempty"`
	StartedAt     string                 `protobuf:"bytes,6,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,7,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportBatch) Reset() {
	*x = ImportBatch{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportBatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportBatch) ProtoMessage() {}

func (x *ImportBatch) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportBatch.ProtoReflect.Descriptor instead.
func (*ImportBatch) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{2}
}

func (x *ImportBatch) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ImportBatch) GetSourceName() string {
	if x != nil {
		return x.SourceName
	}
	return ""
}

func (x *ImportBatch) GetRowsScanned() int32 {
	if x != nil {
		return x.RowsScanned
	}
	return 0
}

func (x *ImportBatch) GetRowsRejected() int32 {
	if x != nil {
		return x.RowsRejected
	}
	return 0
}

func (x *ImportBatch) GetRowsPersisted() int32 {
	if x != nil {
		return x.RowsPersisted
	}
	return 0
}

func (x *ImportBatch) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ImportBatch) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *ImportBatch) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type ListJobsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// status filters by lifecycle status when non-empty.
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	// query searches name, address and services; it overrides day.
	Query string `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	// day restricts to a single due date (YYYY-MM-DD or DD/MM/YYYY).
	Day           string `protobuf:"bytes,3,opt,name=day,proto3" json:"day,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{3}
}

func (x *ListJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListJobsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *ListJobsRequest) GetDay() string {
	if x != nil {
		return x.Day
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	Today         string                 `protobuf:"bytes,2,opt,name=today,proto3" json:"today,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{4}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

func (x *ListJobsResponse) GetToday() string {
	if x != nil {
		return x.Today
	}
	return ""
}

type CreateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Address       string                 `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	Phone         string                 `protobuf:"bytes,3,opt,name=phone,proto3" json:"phone,omitempty"`
	Services      string                 `protobuf:"bytes,4,opt,name=services,proto3" json:"services,omitempty"`
	Price         string                 `protobuf:"bytes,5,opt,name=price,proto3" json:"price,omitempty"`
	NextDue       string                 `protobuf:"bytes,6,opt,name=next_due,json=nextDue,proto3" json:"next_due,omitempty"`
	Frequency     string                 `protobuf:"bytes,7,opt,name=frequency,proto3" json:"frequency,omitempty"`
	PaymentMethod string                 `protobuf:"bytes,8,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	Notes         string                 `protobuf:"bytes,9,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{5}
}

func (x *CreateJobRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateJobRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *CreateJobRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CreateJobRequest) GetServices() string {
	if x != nil {
		return x.Services
	}
	return ""
}

func (x *CreateJobRequest) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *CreateJobRequest) GetNextDue() string {
	if x != nil {
		return x.NextDue
	}
	return ""
}

func (x *CreateJobRequest) GetFrequency() string {
	if x != nil {
		return x.Frequency
	}
	return ""
}

func (x *CreateJobRequest) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *CreateJobRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type CreateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{6}
}

func (x *CreateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type UpdateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          *string                `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Address       *string                `protobuf:"bytes,3,opt,name=address,proto3,oneof" json:"address,omitempty"`
	Phone         *string                `protobuf:"bytes,4,opt,name=phone,proto3,oneof" json:"phone,omitempty"`
	Services      *string                `protobuf:"bytes,5,opt,name=services,proto3,oneof" json:"services,omitempty"`
	Price         *string                `protobuf:"bytes,6,opt,name=price,proto3,oneof" json:"price,omitempty"`
	Balance       *string                `protobuf:"bytes,7,opt,name=balance,proto3,oneof" json:"balance,omitempty"`
	NextDue       *string                `protobuf:"bytes,8,opt,name=next_due,json=nextDue,proto3,oneof" json:"next_due,omitempty"`
	Frequency     *string                `protobuf:"bytes,9,opt,name=frequency,proto3,oneof" json:"frequency,omitempty"`
	PaymentMethod *string                `protobuf:"bytes,10,opt,name=payment_method,json=paymentMethod,proto3,oneof" json:"payment_method,omitempty"`
	Notes         *string                `protobuf:"bytes,11,opt,name=notes,proto3,oneof" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateJobRequest) Reset() {
	*x = UpdateJobRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateJobRequest) ProtoMessage() {}

func (x *UpdateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateJobRequest.ProtoReflect.Descriptor instead.
func (*UpdateJobRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateJobRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateJobRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateJobRequest) GetAddress() string {
	if x != nil && x.Address != nil {
		return *x.Address
	}
	return ""
}

func (x *UpdateJobRequest) GetPhone() string {
	if x != nil && x.Phone != nil {
		return *x.Phone
	}
	return ""
}

func (x *UpdateJobRequest) GetServices() string {
	if x != nil && x.Services != nil {
		return *x.Services
	}
	return ""
}

func (x *UpdateJobRequest) GetPrice() string {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return ""
}

func (x *UpdateJobRequest) GetBalance() string {
	if x != nil && x.Balance != nil {
		return *x.Balance
	}
	return ""
}

func (x *UpdateJobRequest) GetNextDue() string {
	if x != nil && x.NextDue != nil {
		return *x.NextDue
	}
	return ""
}

func (x *UpdateJobRequest) GetFrequency() string {
	if x != nil && x.Frequency != nil {
		return *x.Frequency
	}
	return ""
}

func (x *UpdateJobRequest) GetPaymentMethod() string {
	if x != nil && x.PaymentMethod != nil {
		return *x.PaymentMethod
	}
	return ""
}

func (x *UpdateJobRequest) GetNotes() string {
	if x != nil && x.Notes != nil {
		return *x.Notes
	}
	return ""
}

type UpdateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateJobResponse) Reset() {
	*x = UpdateJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateJobResponse) ProtoMessage() {}

func (x *UpdateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateJobResponse.ProtoReflect.Descriptor instead.
func (*UpdateJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type FinishJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PaymentMethod string                 `protobuf:"bytes,2,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinishJobRequest) Reset() {
	*x = FinishJobRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinishJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinishJobRequest) ProtoMessage() {}

func (x *FinishJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinishJobRequest.ProtoReflect.Descriptor instead.
func (*FinishJobRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{9}
}

func (x *FinishJobRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FinishJobRequest) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

type FinishJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinishJobResponse) Reset() {
	*x = FinishJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinishJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinishJobResponse) ProtoMessage() {}

func (x *FinishJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinishJobResponse.ProtoReflect.Descriptor instead.
func (*FinishJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{10}
}

func (x *FinishJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type MarkJobPaidRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkJobPaidRequest) Reset() {
	*x = MarkJobPaidRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkJobPaidRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkJobPaidRequest) ProtoMessage() {}

func (x *MarkJobPaidRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkJobPaidRequest.ProtoReflect.Descriptor instead.
func (*MarkJobPaidRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{11}
}

func (x *MarkJobPaidRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type MarkJobPaidResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkJobPaidResponse) Reset() {
	*x = MarkJobPaidResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkJobPaidResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkJobPaidResponse) ProtoMessage() {}

func (x *MarkJobPaidResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkJobPaidResponse.ProtoReflect.Descriptor instead.
func (*MarkJobPaidResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{12}
}

func (x *MarkJobPaidResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListDebtorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDebtorsRequest) Reset() {
	*x = ListDebtorsRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDebtorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDebtorsRequest) ProtoMessage() {}

func (x *ListDebtorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDebtorsRequest.ProtoReflect.Descriptor instead.
func (*ListDebtorsRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{13}
}

func (x *ListDebtorsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListDebtorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	TotalOwed     string                 `protobuf:"bytes,2,opt,name=total_owed,json=totalOwed,proto3" json:"total_owed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDebtorsResponse) Reset() {
	*x = ListDebtorsResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDebtorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDebtorsResponse) ProtoMessage() {}

func (x *ListDebtorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDebtorsResponse.ProtoReflect.Descriptor instead.
func (*ListDebtorsResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{14}
}

func (x *ListDebtorsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

func (x *ListDebtorsResponse) GetTotalOwed() string {
	if x != nil {
		return x.TotalOwed
	}
	return ""
}

type ImportJobsRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Content    []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	SourceName string                 `protobuf:"bytes,2,opt,name=source_name,json=sourceName,proto3" json:"source_name,omitempty"`
	// format is "csv" or "xlsx"; inferred from source_name when empty.
	Format        string `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportJobsRequest) Reset() {
	*x = ImportJobsRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportJobsRequest) ProtoMessage() {}

func (x *ImportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportJobsRequest.ProtoReflect.Descriptor instead.
func (*ImportJobsRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{15}
}

func (x *ImportJobsRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ImportJobsRequest) GetSourceName() string {
	if x != nil {
		return x.SourceName
	}
	return ""
}

func (x *ImportJobsRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type ImportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RowsScanned   int32                  `protobuf:"varint,1,opt,name=rows_scanned,json=rowsScanned,proto3" json:"rows_scanned,omitempty"`
	RowsRejected  int32                  `protobuf:"varint,2,opt,name=rows_rejected,json=rowsRejected,proto3" json:"rows_rejected,omitempty"`
	RowsPersisted int32                  `protobuf:"varint,3,opt,name=rows_persisted,json=rowsPersisted,proto3" json:"rows_persisted,omitempty"`
	Columns       []string               `protobuf:"bytes,4,rep,name=columns,proto3" json:"columns,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportJobsResponse) Reset() {
	*x = ImportJobsResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportJobsResponse) ProtoMessage() {}

func (x *ImportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportJobsResponse.ProtoReflect.Descriptor instead.
func (*ImportJobsResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{16}
}

func (x *ImportJobsResponse) GetRowsScanned() int32 {
	if x != nil {
		return x.RowsScanned
	}
	return 0
}

func (x *ImportJobsResponse) GetRowsRejected() int32 {
	if x != nil {
		return x.RowsRejected
	}
	return 0
}

func (x *ImportJobsResponse) GetRowsPersisted() int32 {
	if x != nil {
		return x.RowsPersisted
	}
	return 0
}

func (x *ImportJobsResponse) GetColumns() []string {
	if x != nil {
		return x.Columns
	}
	return nil
}

type PreviewImportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	SourceName    string                 `protobuf:"bytes,2,opt,name=source_name,json=sourceName,proto3" json:"source_name,omitempty"`
	Format        string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewImportRequest) Reset() {
	*x = PreviewImportRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewImportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewImportRequest) ProtoMessage() {}

func (x *PreviewImportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewImportRequest.ProtoReflect.Descriptor instead.
func (*PreviewImportRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{17}
}

func (x *PreviewImportRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *PreviewImportRequest) GetSourceName() string {
	if x != nil {
		return x.SourceName
	}
	return ""
}

func (x *PreviewImportRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type PreviewImportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RowsScanned   int32                  `protobuf:"varint,1,opt,name=rows_scanned,json=rowsScanned,proto3" json:"rows_scanned,omitempty"`
	RowsRejected  int32                  `protobuf:"varint,2,opt,name=rows_rejected,json=rowsRejected,proto3" json:"rows_rejected,omitempty"`
	Columns       []string               `protobuf:"bytes,3,rep,name=columns,proto3" json:"columns,omitempty"`
	Sample        []*Job                 `protobuf:"bytes,4,rep,name=sample,proto3" json:"sample,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewImportResponse) Reset() {
	*x = PreviewImportResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewImportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewImportResponse) ProtoMessage() {}

func (x *PreviewImportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewImportResponse.ProtoReflect.Descriptor instead.
func (*PreviewImportResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{18}
}

func (x *PreviewImportResponse) GetRowsScanned() int32 {
	if x != nil {
		return x.RowsScanned
	}
	return 0
}

func (x *PreviewImportResponse) GetRowsRejected() int32 {
	if x != nil {
		return x.RowsRejected
	}
	return 0
}

func (x *PreviewImportResponse) GetColumns() []string {
	if x != nil {
		return x.Columns
	}
	return nil
}

func (x *PreviewImportResponse) GetSample() []*Job {
	if x != nil {
		return x.Sample
	}
	return nil
}

type ImportCustomersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	SourceName    string                 `protobuf:"bytes,2,opt,name=source_name,json=sourceName,proto3" json:"source_name,omitempty"`
	Format        string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportCustomersRequest) Reset() {
	*x = ImportCustomersRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportCustomersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportCustomersRequest) ProtoMessage() {}

func (x *ImportCustomersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportCustomersRequest.ProtoReflect.Descriptor instead.
func (*ImportCustomersRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{19}
}

func (x *ImportCustomersRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ImportCustomersRequest) GetSourceName() string {
	if x != nil {
		return x.SourceName
	}
	return ""
}

func (x *ImportCustomersRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type ImportCustomersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RowsScanned   int32                  `protobuf:"varint,1,opt,name=rows_scanned,json=rowsScanned,proto3" json:"rows_scanned,omitempty"`
	RowsRejected  int32                  `protobuf:"varint,2,opt,name=rows_rejected,json=rowsRejected,proto3" json:"rows_rejected,omitempty"`
	RowsPersisted int32                  `protobuf:"varint,3,opt,name=rows_persisted,json=rowsPersisted,proto3" json:"rows_persisted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportCustomersResponse) Reset() {
	*x = ImportCustomersResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportCustomersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportCustomersResponse) ProtoMessage() {}

func (x *ImportCustomersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportCustomersResponse.ProtoReflect.Descriptor instead.
func (*ImportCustomersResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{20}
}

func (x *ImportCustomersResponse) GetRowsScanned() int32 {
	if x != nil {
		return x.RowsScanned
	}
	return 0
}

func (x *ImportCustomersResponse) GetRowsRejected() int32 {
	if x != nil {
		return x.RowsRejected
	}
	return 0
}

func (x *ImportCustomersResponse) GetRowsPersisted() int32 {
	if x != nil {
		return x.RowsPersisted
	}
	return 0
}

type ListImportBatchesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListImportBatchesRequest) Reset() {
	*x = ListImportBatchesRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListImportBatchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListImportBatchesRequest) ProtoMessage() {}

func (x *ListImportBatchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListImportBatchesRequest.ProtoReflect.Descriptor instead.
func (*ListImportBatchesRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{21}
}

func (x *ListImportBatchesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListImportBatchesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batches       []*ImportBatch         `protobuf:"bytes,1,rep,name=batches,proto3" json:"batches,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListImportBatchesResponse) Reset() {
	*x = ListImportBatchesResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListImportBatchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListImportBatchesResponse) ProtoMessage() {}

func (x *ListImportBatchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListImportBatchesResponse.ProtoReflect.Descriptor instead.
func (*ListImportBatchesResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{22}
}

func (x *ListImportBatchesResponse) GetBatches() []*ImportBatch {
	if x != nil {
		return x.Batches
	}
	return nil
}

type ListCustomersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCustomersRequest) Reset() {
	*x = ListCustomersRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCustomersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCustomersRequest) ProtoMessage() {}

func (x *ListCustomersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCustomersRequest.ProtoReflect.Descriptor instead.
func (*ListCustomersRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{23}
}

type ListCustomersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Customers     []*Customer            `protobuf:"bytes,1,rep,name=customers,proto3" json:"customers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCustomersResponse) Reset() {
	*x = ListCustomersResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCustomersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCustomersResponse) ProtoMessage() {}

func (x *ListCustomersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCustomersResponse.ProtoReflect.Descriptor instead.
func (*ListCustomersResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{24}
}

func (x *ListCustomersResponse) GetCustomers() []*Customer {
	if x != nil {
		return x.Customers
	}
	return nil
}

type CreateCustomerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reference     string                 `protobuf:"bytes,1,opt,name=reference,proto3" json:"reference,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Address       string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCustomerRequest) Reset() {
	*x = CreateCustomerRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCustomerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCustomerRequest) ProtoMessage() {}

func (x *CreateCustomerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCustomerRequest.ProtoReflect.Descriptor instead.
func (*CreateCustomerRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{25}
}

func (x *CreateCustomerRequest) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *CreateCustomerRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateCustomerRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *CreateCustomerRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

type CreateCustomerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Customer      *Customer              `protobuf:"bytes,1,opt,name=customer,proto3" json:"customer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCustomerResponse) Reset() {
	*x = CreateCustomerResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCustomerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCustomerResponse) ProtoMessage() {}

func (x *CreateCustomerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCustomerResponse.ProtoReflect.Descriptor instead.
func (*CreateCustomerResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{26}
}

func (x *CreateCustomerResponse) GetCustomer() *Customer {
	if x != nil {
		return x.Customer
	}
	return nil
}

type ExportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsRequest) Reset() {
	*x = ExportJobsRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsRequest) ProtoMessage() {}

func (x *ExportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsRequest.ProtoReflect.Descriptor instead.
func (*ExportJobsRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{27}
}

func (x *ExportJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ExportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsResponse) Reset() {
	*x = ExportJobsResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsResponse) ProtoMessage() {}

func (x *ExportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsResponse.ProtoReflect.Descriptor instead.
func (*ExportJobsResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{28}
}

func (x *ExportJobsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ClearJobsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// confirm must be true; clearing is destructive.
	Confirm       bool `protobuf:"varint,1,opt,name=confirm,proto3" json:"confirm,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearJobsRequest) Reset() {
	*x = ClearJobsRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearJobsRequest) ProtoMessage() {}

func (x *ClearJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearJobsRequest.ProtoReflect.Descriptor instead.
func (*ClearJobsRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{29}
}

func (x *ClearJobsRequest) GetConfirm() bool {
	if x != nil {
		return x.Confirm
	}
	return false
}

type ClearJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       int32                  `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearJobsResponse) Reset() {
	*x = ClearJobsResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearJobsResponse) ProtoMessage() {}

func (x *ClearJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearJobsResponse.ProtoReflect.Descriptor instead.
func (*ClearJobsResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{30}
}

func (x *ClearJobsResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

var File_jobs_v1_jobs_proto protoreflect.FileDescriptor

const file_jobs_v1_jobs_proto_rawDesc = "" +
	"\n" +
	"\x12jobs/v1/jobs.proto\x12\ajobs.v1\"\xab\x03\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x1a\n" +
	"\bservices\x18\x05 \x01(\tR\bservices\x12\x14\n" +
	"\x05price\x18\x06 \x01(\tR\x05price\x12\x18\n" +
	"\abalance\x18\a \x01(\tR\abalance\x12\x19\n" +
	"\bnext_due\x18\b \x01(\tR\anextDue\x12\x1c\n" +
	"\tfrequency\x18\t \x01(\tR\tfrequency\x12%\n" +
	"\x0epayment_method\x18\n" +
	" \x01(\tR\rpaymentMethod\x12\x14\n" +
	"\x05notes\x18\v \x01(\tR\x05notes\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x12\x1b\n" +
	"\tdue_label\x18\r \x01(\tR\bdueLabel\x12\x1b\n" +
	"\tdue_style\x18\x0e \x01(\tR\bdueStyle\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\"\xba\x01\n" +
	"\bCustomer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1c\n" +
	"\treference\x18\x02 \x01(\tR\treference\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\x12\x14\n" +
	"\x05phone\x18\x05 \x01(\tR\x05phone\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"\x92\x02\n" +
	"\vImportBatch\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vsource_name\x18\x02 \x01(\tR\n" +
	"sourceName\x12!\n" +
	"\frows_scanned\x18\x03 \x01(\x05R\vrowsScanned\x12#\n" +
	"\rrows_rejected\x18\x04 \x01(\x05R\frowsRejected\x12%\n" +
	"\x0erows_persisted\x18\x05 \x01(\x05R\rrowsPersisted\x12\x1d\n" +
	"\n" +
	"started_at\x18\x06 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\a \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\"Q\n" +
	"\x0fListJobsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05query\x18\x02 \x01(\tR\x05query\x12\x10\n" +
	"\x03day\x18\x03 \x01(\tR\x03day\"J\n" +
	"\x10ListJobsResponse\x12 \n" +
	"\x04jobs\x18\x01 \x03(\v2\f.jobs.v1.JobR\x04jobs\x12\x14\n" +
	"\x05today\x18\x02 \x01(\tR\x05today\"\xfe\x01\n" +
	"\x10CreateJobRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\aaddress\x18\x02 \x01(\tR\aaddress\x12\x14\n" +
	"\x05phone\x18\x03 \x01(\tR\x05phone\x12\x1a\n" +
	"\bservices\x18\x04 \x01(\tR\bservices\x12\x14\n" +
	"\x05price\x18\x05 \x01(\tR\x05price\x12\x19\n" +
	"\bnext_due\x18\x06 \x01(\tR\anextDue\x12\x1c\n" +
	"\tfrequency\x18\a \x01(\tR\tfrequency\x12%\n" +
	"\x0epayment_method\x18\b \x01(\tR\rpaymentMethod\x12\x14\n" +
	"\x05notes\x18\t \x01(\tR\x05notes\"3\n" +
	"\x11CreateJobResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.jobs.v1.JobR\x03job\"\xd4\x03\n" +
	"\x10UpdateJobRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\x04name\x18\x02 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x1d\n" +
	"\aaddress\x18\x03 \x01(\tH\x01R\aaddress\x88\x01\x01\x12\x19\n" +
	"\x05phone\x18\x04 \x01(\tH\x02R\x05phone\x88\x01\x01\x12\x1f\n" +
	"\bservices\x18\x05 \x01(\tH\x03R\bservices\x88\x01\x01\x12\x19\n" +
	"\x05price\x18\x06 \x01(\tH\x04R\x05price\x88\x01\x01\x12\x1d\n" +
	"\abalance\x18\a \x01(\tH\x05R\abalance\x88\x01\x01\x12\x1e\n" +
	"\bnext_due\x18\b \x01(\tH\x06R\anextDue\x88\x01\x01\x12!\n" +
	"\tfrequency\x18\t \x01(\tH\aR\tfrequency\x88\x01\x01\x12*\n" +
	"\x0epayment_method\x18\n" +
	" \x01(\tH\bR\rpaymentMethod\x88\x01\x01\x12\x19\n" +
	"\x05notes\x18\v \x01(\tH\tR\x05notes\x88\x01\x01B\a\n" +
	"\x05_nameB\n" +
	"\n" +
	"\b_addressB\b\n" +
	"\x06_phoneB\v\n" +
	"\t_servicesB\b\n" +
	"\x06_priceB\n" +
	"\n" +
	"\b_balanceB\v\n" +
	"\t_next_dueB\f\n" +
	"\n" +
	"_frequencyB\x11\n" +
	"\x0f_payment_methodB\b\n" +
	"\x06_notes\"3\n" +
	"\x11UpdateJobResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.jobs.v1.JobR\x03job\"I\n" +
	"\x10FinishJobRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0epayment_method\x18\x02 \x01(\tR\rpaymentMethod\"3\n" +
	"\x11FinishJobResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.jobs.v1.JobR\x03job\"$\n" +
	"\x12MarkJobPaidRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"5\n" +
	"\x13MarkJobPaidResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.jobs.v1.JobR\x03job\"*\n" +
	"\x12ListDebtorsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"V\n" +
	"\x13ListDebtorsResponse\x12 \n" +
	"\x04jobs\x18\x01 \x03(\v2\f.jobs.v1.JobR\x04jobs\x12\x1d\n" +
	"\n" +
	"total_owed\x18\x02 \x01(\tR\ttotalOwed\"f\n" +
	"\x11ImportJobsRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1f\n" +
	"\vsource_name\x18\x02 \x01(\tR\n" +
	"sourceName\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\"\x9d\x01\n" +
	"\x12ImportJobsResponse\x12!\n" +
	"\frows_scanned\x18\x01 \x01(\x05R\vrowsScanned\x12#\n" +
	"\rrows_rejected\x18\x02 \x01(\x05R\frowsRejected\x12%\n" +
	"\x0erows_persisted\x18\x03 \x01(\x05R\rrowsPersisted\x12\x18\n" +
	"\acolumns\x18\x04 \x03(\tR\acolumns\"i\n" +
	"\x14PreviewImportRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1f\n" +
	"\vsource_name\x18\x02 \x01(\tR\n" +
	"sourceName\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\"\x9f\x01\n" +
	"\x15PreviewImportResponse\x12!\n" +
	"\frows_scanned\x18\x01 \x01(\x05R\vrowsScanned\x12#\n" +
	"\rrows_rejected\x18\x02 \x01(\x05R\frowsRejected\x12\x18\n" +
	"\acolumns\x18\x03 \x03(\tR\acolumns\x12$\n" +
	"\x06sample\x18\x04 \x03(\v2\f.jobs.v1.JobR\x06sample\"k\n" +
	"\x16ImportCustomersRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1f\n" +
	"\vsource_name\x18\x02 \x01(\tR\n" +
	"sourceName\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\"\x88\x01\n" +
	"\x17ImportCustomersResponse\x12!\n" +
	"\frows_scanned\x18\x01 \x01(\x05R\vrowsScanned\x12#\n" +
	"\rrows_rejected\x18\x02 \x01(\x05R\frowsRejected\x12%\n" +
	"\x0erows_persisted\x18\x03 \x01(\x05R\rrowsPersisted\"0\n" +
	"\x18ListImportBatchesRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"K\n" +
	"\x19ListImportBatchesResponse\x12.\n" +
	"\abatches\x18\x01 \x03(\v2\x14.jobs.v1.ImportBatchR\abatches\"\x16\n" +
	"\x14ListCustomersRequest\"H\n" +
	"\x15ListCustomersResponse\x12/\n" +
	"\tcustomers\x18\x01 \x03(\v2\x11.jobs.v1.CustomerR\tcustomers\"y\n" +
	"\x15CreateCustomerRequest\x12\x1c\n" +
	"\treference\x18\x01 \x01(\tR\treference\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\"G\n" +
	"\x16CreateCustomerResponse\x12-\n" +
	"\bcustomer\x18\x01 \x01(\v2\x11.jobs.v1.CustomerR\bcustomer\"+\n" +
	"\x11ExportJobsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"(\n" +
	"\x12ExportJobsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\",\n" +
	"\x10ClearJobsRequest\x12\x18\n" +
	"\aconfirm\x18\x01 \x01(\bR\aconfirm\"-\n" +
	"\x11ClearJobsResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\x05R\adeleted2\xb9\x04\n" +
	"\vJobsService\x12?\n" +
	"\bListJobs\x12\x18.jobs.v1.ListJobsRequest\x1a\x19.jobs.v1.ListJobsResponse\x12B\n" +
	"\tCreateJob\x12\x19.jobs.v1.CreateJobRequest\x1a\x1a.jobs.v1.CreateJobResponse\x12B\n" +
	"\tUpdateJob\x12\x19.jobs.v1.UpdateJobRequest\x1a\x1a.jobs.v1.UpdateJobResponse\x12B\n" +
	"\tFinishJob\x12\x19.jobs.v1.FinishJobRequest\x1a\x1a.jobs.v1.FinishJobResponse\x12H\n" +
	"\vMarkJobPaid\x12\x1b.jobs.v1.MarkJobPaidRequest\x1a\x1c.jobs.v1.MarkJobPaidResponse\x12H\n" +
	"\vListDebtors\x12\x1b.jobs.v1.ListDebtorsRequest\x1a\x1c.jobs.v1.ListDebtorsResponse\x12B\n" +
	"\tClearJobs\x12\x19.jobs.v1.ClearJobsRequest\x1a\x1a.jobs.v1.ClearJobsResponse\x12E\n" +
	"\n" +
	"ExportJobs\x12\x1a.jobs.v1.ExportJobsRequest\x1a\x1b.jobs.v1.ExportJobsResponse2\xd8\x02\n" +
	"\rImportService\x12E\n" +
	"\n" +
	"ImportJobs\x12\x1a.jobs.v1.ImportJobsRequest\x1a\x1b.jobs.v1.ImportJobsResponse\x12N\n" +
	"\rPreviewImport\x12\x1d.jobs.v1.PreviewImportRequest\x1a\x1e.jobs.v1.PreviewImportResponse\x12T\n" +
	"\x0fImportCustomers\x12\x1f.jobs.v1.ImportCustomersRequest\x1a .jobs.v1.ImportCustomersResponse\x12Z\n" +
	"\x11ListImportBatches\x12!.jobs.v1.ListImportBatchesRequest\x1a\".jobs.v1.ListImportBatchesResponse2\xb5\x01\n" +
	"\x10CustomersService\x12N\n" +
	"\rListCustomers\x12\x1d.jobs.v1.ListCustomersRequest\x1a\x1e.jobs.v1.ListCustomersResponse\x12Q\n" +
	"\x0eCreateCustomer\x12\x1e.jobs.v1.CreateCustomerRequest\x1a\x1f.jobs.v1.CreateCustomerResponseB;Z9github.com/lewisallan/titan-jobs/gen/proto/jobs/v1;jobsv1b\x06proto3"

var (
	file_jobs_v1_jobs_proto_rawDescOnce sync.Once
	file_jobs_v1_jobs_proto_rawDescData []byte
)

func file_jobs_v1_jobs_proto_rawDescGZIP() []byte {
	file_jobs_v1_jobs_proto_rawDescOnce.Do(func() {
		file_jobs_v1_jobs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_jobs_v1_jobs_proto_rawDesc), len(file_jobs_v1_jobs_proto_rawDesc)))
	})
	return file_jobs_v1_jobs_proto_rawDescData
}

var file_jobs_v1_jobs_proto_msgTypes = make([]protoimpl.MessageInfo, 31)
var file_jobs_v1_jobs_proto_goTypes = []any{
	(*Job)(nil),                       // 0: jobs.v1.Job
	(*Customer)(nil),                  // 1: jobs.v1.Customer
	(*ImportBatch)(nil),               // 2: jobs.v1.ImportBatch
	(*ListJobsRequest)(nil),           // 3: jobs.v1.ListJobsRequest
	(*ListJobsResponse)(nil),          // 4: jobs.v1.ListJobsResponse
	(*CreateJobRequest)(nil),          // 5: jobs.v1.CreateJobRequest
	(*CreateJobResponse)(nil),         // 6: jobs.v1.CreateJobResponse
	(*UpdateJobRequest)(nil),          // 7: jobs.v1.UpdateJobRequest
	(*UpdateJobResponse)(nil),         // 8: jobs.v1.UpdateJobResponse
	(*FinishJobRequest)(nil),          // 9: jobs.v1.FinishJobRequest
	(*FinishJobResponse)(nil),         // 10: jobs.v1.FinishJobResponse
	(*MarkJobPaidRequest)(nil),        // 11: jobs.v1.MarkJobPaidRequest
	(*MarkJobPaidResponse)(nil),       // 12: jobs.v1.MarkJobPaidResponse
	(*ListDebtorsRequest)(nil),        // 13: jobs.v1.ListDebtorsRequest
	(*ListDebtorsResponse)(nil),       // 14: jobs.v1.ListDebtorsResponse
	(*ImportJobsRequest)(nil),         // 15: jobs.v1.ImportJobsRequest
	(*ImportJobsResponse)(nil),        // 16: jobs.v1.ImportJobsResponse
	(*PreviewImportRequest)(nil),      // 17: jobs.v1.PreviewImportRequest
	(*PreviewImportResponse)(nil),     // 18: jobs.v1.PreviewImportResponse
	(*ImportCustomersRequest)(nil),    // 19: jobs.v1.ImportCustomersRequest
	(*ImportCustomersResponse)(nil),   // 20: jobs.v1.ImportCustomersResponse
	(*ListImportBatchesRequest)(nil),  // 21: jobs.v1.ListImportBatchesRequest
	(*ListImportBatchesResponse)(nil), // 22: jobs.v1.ListImportBatchesResponse
	(*ListCustomersRequest)(nil),      // 23: jobs.v1.ListCustomersRequest
	(*ListCustomersResponse)(nil),     // 24: jobs.v1.ListCustomersResponse
	(*CreateCustomerRequest)(nil),     // 25: jobs.v1.CreateCustomerRequest
	(*CreateCustomerResponse)(nil),    // 26: jobs.v1.CreateCustomerResponse
	(*ExportJobsRequest)(nil),         // 27: jobs.v1.ExportJobsRequest
	(*ExportJobsResponse)(nil),        // 28: jobs.v1.ExportJobsResponse
	(*ClearJobsRequest)(nil),          // 29: jobs.v1.ClearJobsRequest
	(*ClearJobsResponse)(nil),         // 30: jobs.v1.ClearJobsResponse
}
var file_jobs_v1_jobs_proto_depIdxs = []int32{
	0,  // 0: jobs.v1.ListJobsResponse.jobs:type_name -> jobs.v1.Job
	0,  // 1: jobs.v1.CreateJobResponse.job:type_name -> jobs.v1.Job
	0,  // 2: jobs.v1.UpdateJobResponse.job:type_name -> jobs.v1.Job
	0,  // 3: jobs.v1.FinishJobResponse.job:type_name -> jobs.v1.Job
	0,  // 4: jobs.v1.MarkJobPaidResponse.job:type_name -> jobs.v1.Job
	0,  // 5: jobs.v1.ListDebtorsResponse.jobs:type_name -> jobs.v1.Job
	0,  // 6: jobs.v1.PreviewImportResponse.sample:type_name -> jobs.v1.Job
	2,  // 7: jobs.v1.ListImportBatchesResponse.batches:type_name -> jobs.v1.ImportBatch
	1,  // 8: jobs.v1.ListCustomersResponse.customers:type_name -> jobs.v1.Customer
	1,  // 9: jobs.v1.CreateCustomerResponse.customer:type_name -> jobs.v1.Customer
	3,  // 10: jobs.v1.JobsService.ListJobs:input_type -> jobs.v1.ListJobsRequest
	5,  // 11: jobs.v1.JobsService.CreateJob:input_type -> jobs.v1.CreateJobRequest
	7,  // 12: jobs.v1.JobsService.UpdateJob:input_type -> jobs.v1.UpdateJobRequest
	9,  // 13: jobs.v1.JobsService.FinishJob:input_type -> jobs.v1.FinishJobRequest
	11, // 14: jobs.v1.JobsService.MarkJobPaid:input_type -> jobs.v1.MarkJobPaidRequest
	13, // 15: jobs.v1.JobsService.ListDebtors:input_type -> jobs.v1.ListDebtorsRequest
	29, // 16: jobs.v1.JobsService.ClearJobs:input_type -> jobs.v1.ClearJobsRequest
	27, // 17: jobs.v1.JobsService.ExportJobs:input_type -> jobs.v1.ExportJobsRequest
	15, // 18: jobs.v1.ImportService.ImportJobs:input_type -> jobs.v1.ImportJobsRequest
	17, // 19: jobs.v1.ImportService.PreviewImport:input_type -> jobs.v1.PreviewImportRequest
	19, // 20: jobs.v1.ImportService.ImportCustomers:input_type -> jobs.v1.ImportCustomersRequest
	21, // 21: jobs.v1.ImportService.ListImportBatches:input_type -> jobs.v1.ListImportBatchesRequest
	23, // 22: jobs.v1.CustomersService.ListCustomers:input_type -> jobs.v1.ListCustomersRequest
	25, // 23: jobs.v1.CustomersService.CreateCustomer:input_type -> jobs.v1.CreateCustomerRequest
	4,  // 24: jobs.v1.JobsService.ListJobs:output_type -> jobs.v1.ListJobsResponse
	6,  // 25: jobs.v1.JobsService.CreateJob:output_type -> jobs.v1.CreateJobResponse
	8,  // 26: jobs.v1.JobsService.UpdateJob:output_type -> jobs.v1.UpdateJobResponse
	10, // 27: jobs.v1.JobsService.FinishJob:output_type -> jobs.v1.FinishJobResponse
	12, // 28: jobs.v1.JobsService.MarkJobPaid:output_type -> jobs.v1.MarkJobPaidResponse
	14, // 29: jobs.v1.JobsService.ListDebtors:output_type -> jobs.v1.ListDebtorsResponse
	30, // 30: jobs.v1.JobsService.ClearJobs:output_type -> jobs.v1.ClearJobsResponse
	28, // 31: jobs.v1.JobsService.ExportJobs:output_type -> jobs.v1.ExportJobsResponse
	16, // 32: jobs.v1.ImportService.ImportJobs:output_type -> jobs.v1.ImportJobsResponse
	18, // 33: jobs.v1.ImportService.PreviewImport:output_type -> jobs.v1.PreviewImportResponse
	20, // 34: jobs.v1.ImportService.ImportCustomers:output_type -> jobs.v1.ImportCustomersResponse
	22, // 35: jobs.v1.ImportService.ListImportBatches:output_type -> jobs.v1.ListImportBatchesResponse
	24, // 36: jobs.v1.CustomersService.ListCustomers:output_type -> jobs.v1.ListCustomersResponse
	26, // 37: jobs.v1.CustomersService.CreateCustomer:output_type -> jobs.v1.CreateCustomerResponse
	24, // [24:38] is the sub-list for method output_type
	10, // [10:24] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_jobs_v1_jobs_proto_init() }
func file_jobs_v1_jobs_proto_init() {
	if File_jobs_v1_jobs_proto != nil {
		return
	}
	file_jobs_v1_jobs_proto_msgTypes[7].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_jobs_v1_jobs_proto_rawDesc), len(file_jobs_v1_jobs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   31,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_jobs_v1_jobs_proto_goTypes,
		DependencyIndexes: file_jobs_v1_jobs_proto_depIdxs,
		MessageInfos:      file_jobs_v1_jobs_proto_msgTypes,
	}.Build()
	File_jobs_v1_jobs_proto = out.File
	file_jobs_v1_jobs_proto_goTypes = nil
	file_jobs_v1_jobs_proto_depIdxs = nil
}
