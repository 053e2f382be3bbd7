package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sim_inventory/internal/models"
)

func TestAddReminderAndMarkDone(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewTaskService(st, executor)

	require.NoError(t, svc.AddReminder(adminActor, NewReminderData{
		TaskName:   "Recharge batch 12",
		AssignedTo: "Ravi",
		DueDate:    time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	}))
	reminders := st.Reminders()
	require.Len(t, reminders, 1)
	assert.Equal(t, models.ReminderPending, reminders[0].Status)
	assert.Nil(t, reminders[0].CompletionDate)

	require.NoError(t, svc.MarkReminderDone(employeeActor, reminders[0].ID, "done before lunch"))
	updated := st.ReminderByID(reminders[0].ID)
	require.NotNil(t, updated)
	assert.Equal(t, models.ReminderDone, updated.Status)
	require.NotNil(t, updated.CompletionDate)
	assert.Equal(t, "done before lunch", updated.Notes)
}

func TestRemindersForFiltersByAssignee(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewTaskService(st, executor)

	mine := models.ReminderRecord{ID: uuid.NewString(), SrNo: 1, TaskName: "Mine",
		AssignedTo: "Ravi", Status: models.ReminderPending, DueDate: time.Now()}
	other := models.ReminderRecord{ID: uuid.NewString(), SrNo: 2, TaskName: "Other",
		AssignedTo: "Priya", Status: models.ReminderPending, DueDate: time.Now()}
	seed(t, st, executor, models.CollectionReminders, mine.ID, &mine)
	seed(t, st, executor, models.CollectionReminders, other.ID, &other)

	assert.Len(t, svc.RemindersFor(adminActor), 2)
	filtered := svc.RemindersFor(employeeActor)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Mine", filtered[0].TaskName)
}

func TestDeleteReminderRequiresAdmin(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewTaskService(st, executor)

	reminder := models.ReminderRecord{ID: uuid.NewString(), SrNo: 1, TaskName: "Cleanup",
		AssignedTo: "Ravi", Status: models.ReminderPending, DueDate: time.Now()}
	seed(t, st, executor, models.CollectionReminders, reminder.ID, &reminder)

	assert.ErrorIs(t, svc.DeleteReminder(employeeActor, reminder.ID), ErrPermissionDenied)
	require.NoError(t, svc.DeleteReminder(adminActor, reminder.ID))
	assert.Empty(t, st.Reminders())
}

func TestActivitiesForFiltersByEmployee(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewTaskService(st, executor)

	mine := models.ActivityRecord{ID: uuid.NewString(), SrNo: 1, EmployeeName: "Ravi",
		Action: "Added Number", Timestamp: time.Now()}
	other := models.ActivityRecord{ID: uuid.NewString(), SrNo: 2, EmployeeName: "Admin",
		Action: "Deleted Numbers", Timestamp: time.Now()}
	seed(t, st, executor, models.CollectionActivities, mine.ID, &mine)
	seed(t, st, executor, models.CollectionActivities, other.ID, &other)

	assert.Len(t, svc.ActivitiesFor(adminActor), 2)
	filtered := svc.ActivitiesFor(employeeActor)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Added Number", filtered[0].Action)
}

func TestDeleteActivitiesRequiresAdmin(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewTaskService(st, executor)

	record := models.ActivityRecord{ID: uuid.NewString(), SrNo: 1, EmployeeName: "Ravi",
		Action: "Added Number", Timestamp: time.Now()}
	seed(t, st, executor, models.CollectionActivities, record.ID, &record)

	assert.ErrorIs(t, svc.DeleteActivities(employeeActor, []string{record.ID}), ErrPermissionDenied)
	require.NoError(t, svc.DeleteActivities(adminActor, []string{record.ID}))
}

func TestAddPaymentAssignsSrNo(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewTaskService(st, executor)

	require.NoError(t, svc.AddPayment(adminActor, NewPaymentData{
		VendorName:  "numberwale",
		Amount:      12000,
		PaymentDate: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		Notes:       "August settlement",
	}))
	require.NoError(t, svc.AddPayment(adminActor, NewPaymentData{
		VendorName:  "vipnumberstore",
		Amount:      8000,
		PaymentDate: time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC),
	}))

	payments := svc.Payments()
	require.Len(t, payments, 2)
	srNos := map[int]bool{payments[0].SrNo: true, payments[1].SrNo: true}
	assert.True(t, srNos[1] && srNos[2])
}

func TestVendorsUnionWithSalesSoldTo(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewTaskService(st, executor)

	sale := newSaleRecord("9123456780", models.UpcPending)
	sale.SoldTo = "Custom Buyer"
	seed(t, st, executor, models.CollectionSales, sale.ID, &sale)

	vendors := svc.Vendors()
	assert.Contains(t, vendors, "Custom Buyer")
	for _, fixed := range []string{"lifetimenumber", "numberwale", "vipfancynumber"} {
		assert.Contains(t, vendors, fixed)
	}
	// 去重且有序
	assert.Len(t, vendors, len(defaultVendors)+1)
	for i := 1; i < len(vendors); i++ {
		assert.LessOrEqual(t, vendors[i-1], vendors[i])
	}
}
