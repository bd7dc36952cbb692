// Code generated by ent, DO NOT EDIT.

package recurringtasktemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tanercay/goalgrid/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldOwnerID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldDescription, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldCategory, v))
}

// DueTime applies equality check predicate on the "due_time" field. It's identical to DueTimeEQ.
func DueTime(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldDueTime, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldIsActive, v))
}

// LastGeneratedDate applies equality check predicate on the "last_generated_date" field. It's identical to LastGeneratedDateEQ.
func LastGeneratedDate(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldLastGeneratedDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldOwnerID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v uuid.UUID) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldContainsFold(FieldDescription, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldPriority, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldContainsFold(FieldCategory, v))
}

// DueTimeEQ applies the EQ predicate on the "due_time" field.
func DueTimeEQ(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldDueTime, v))
}

// DueTimeNEQ applies the NEQ predicate on the "due_time" field.
func DueTimeNEQ(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldDueTime, v))
}

// DueTimeIn applies the In predicate on the "due_time" field.
func DueTimeIn(vs ...string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldDueTime, vs...))
}

// DueTimeNotIn applies the NotIn predicate on the "due_time" field.
func DueTimeNotIn(vs ...string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldDueTime, vs...))
}

// DueTimeGT applies the GT predicate on the "due_time" field.
func DueTimeGT(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldDueTime, v))
}

// DueTimeGTE applies the GTE predicate on the "due_time" field.
func DueTimeGTE(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldDueTime, v))
}

// DueTimeLT applies the LT predicate on the "due_time" field.
func DueTimeLT(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldDueTime, v))
}

// DueTimeLTE applies the LTE predicate on the "due_time" field.
func DueTimeLTE(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldDueTime, v))
}

// DueTimeContains applies the Contains predicate on the "due_time" field.
func DueTimeContains(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldContains(FieldDueTime, v))
}

// DueTimeHasPrefix applies the HasPrefix predicate on the "due_time" field.
func DueTimeHasPrefix(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldHasPrefix(FieldDueTime, v))
}

// DueTimeHasSuffix applies the HasSuffix predicate on the "due_time" field.
func DueTimeHasSuffix(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldHasSuffix(FieldDueTime, v))
}

// DueTimeIsNil applies the IsNil predicate on the "due_time" field.
func DueTimeIsNil() predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIsNull(FieldDueTime))
}

// DueTimeNotNil applies the NotNil predicate on the "due_time" field.
func DueTimeNotNil() predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotNull(FieldDueTime))
}

// DueTimeEqualFold applies the EqualFold predicate on the "due_time" field.
func DueTimeEqualFold(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEqualFold(FieldDueTime, v))
}

// DueTimeContainsFold applies the ContainsFold predicate on the "due_time" field.
func DueTimeContainsFold(v string) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldContainsFold(FieldDueTime, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldIsActive, v))
}

// LastGeneratedDateEQ applies the EQ predicate on the "last_generated_date" field.
func LastGeneratedDateEQ(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldLastGeneratedDate, v))
}

// LastGeneratedDateNEQ applies the NEQ predicate on the "last_generated_date" field.
func LastGeneratedDateNEQ(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldLastGeneratedDate, v))
}

// LastGeneratedDateIn applies the In predicate on the "last_generated_date" field.
func LastGeneratedDateIn(vs ...time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldLastGeneratedDate, vs...))
}

// LastGeneratedDateNotIn applies the NotIn predicate on the "last_generated_date" field.
func LastGeneratedDateNotIn(vs ...time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldLastGeneratedDate, vs...))
}

// LastGeneratedDateGT applies the GT predicate on the "last_generated_date" field.
func LastGeneratedDateGT(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldLastGeneratedDate, v))
}

// LastGeneratedDateGTE applies the GTE predicate on the "last_generated_date" field.
func LastGeneratedDateGTE(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldLastGeneratedDate, v))
}

// LastGeneratedDateLT applies the LT predicate on the "last_generated_date" field.
func LastGeneratedDateLT(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldLastGeneratedDate, v))
}

// LastGeneratedDateLTE applies the LTE predicate on the "last_generated_date" field.
func LastGeneratedDateLTE(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldLastGeneratedDate, v))
}

// LastGeneratedDateIsNil applies the IsNil predicate on the "last_generated_date" field.
func LastGeneratedDateIsNil() predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIsNull(FieldLastGeneratedDate))
}

// LastGeneratedDateNotNil applies the NotNil predicate on the "last_generated_date" field.
func LastGeneratedDateNotNil() predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotNull(FieldLastGeneratedDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecurringTaskTemplate) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecurringTaskTemplate) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecurringTaskTemplate) predicate.RecurringTaskTemplate {
	return predicate.RecurringTaskTemplate(sql.NotPredicates(p))
}
