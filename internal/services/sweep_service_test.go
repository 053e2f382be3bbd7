package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sim_inventory/internal/models"
)

func TestSweepRtsDatesConvertsDueNumbers(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewSweepService(st, executor)
	now := time.Date(2025, 8, 31, 10, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	yesterday := now.AddDate(0, 0, -1)
	today := now
	tomorrow := now.AddDate(0, 0, 1)

	due1 := newNumberRecord("9100000001")
	due1.Status = models.StatusNonRTS
	due1.RTSDate = &yesterday
	due2 := newNumberRecord("9100000002")
	due2.Status = models.StatusNonRTS
	due2.RTSDate = &today
	notDue := newNumberRecord("9100000003")
	notDue.Status = models.StatusNonRTS
	notDue.RTSDate = &tomorrow
	seed(t, st, executor, models.CollectionNumbers, due1.ID, &due1)
	seed(t, st, executor, models.CollectionNumbers, due2.ID, &due2)
	seed(t, st, executor, models.CollectionNumbers, notDue.ID, &notDue)

	require.NoError(t, svc.SweepRtsDates())

	converted1 := st.NumberByID(due1.ID)
	require.NotNil(t, converted1)
	assert.Equal(t, models.StatusRTS, converted1.Status)
	assert.Nil(t, converted1.RTSDate)
	assert.True(t, st.RecentlyAutoRts(due1.ID))

	converted2 := st.NumberByID(due2.ID)
	assert.Equal(t, models.StatusRTS, converted2.Status)

	untouched := st.NumberByID(notDue.ID)
	assert.Equal(t, models.StatusNonRTS, untouched.Status)
	require.NotNil(t, untouched.RTSDate)
	assert.False(t, st.RecentlyAutoRts(notDue.ID))
}

func TestSweepRtsDatesNoHighlightOnCommitFailure(t *testing.T) {
	st, executor := newTestEnv(t)

	yesterday := time.Now().AddDate(0, 0, -1)
	num := newNumberRecord("9100000006")
	num.Status = models.StatusNonRTS
	num.RTSDate = &yesterday
	seed(t, st, executor, models.CollectionNumbers, num.ID, &num)

	svc := NewSweepService(st, failingExecutor{})
	require.Error(t, svc.SweepRtsDates())

	// 落库失败的号码不得进入最近自动转换集合
	assert.False(t, st.RecentlyAutoRts(num.ID))
	assert.Equal(t, models.StatusNonRTS, st.NumberByID(num.ID).Status)
}

func TestSweepRtsDatesIdempotent(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewSweepService(st, executor)

	yesterday := time.Now().AddDate(0, 0, -1)
	num := newNumberRecord("9100000004")
	num.Status = models.StatusNonRTS
	num.RTSDate = &yesterday
	seed(t, st, executor, models.CollectionNumbers, num.ID, &num)

	require.NoError(t, svc.SweepRtsDates())
	activityCount := len(st.Activities())

	// 第二轮没有到期记录，不应产生新的转换或日志
	require.NoError(t, svc.SweepRtsDates())
	assert.Len(t, st.Activities(), activityCount)
}

func TestSweepSafeCustodyDatesMarksOnce(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewSweepService(st, executor)

	yesterday := time.Now().AddDate(0, 0, -1)
	num := newNumberRecord("9100000005")
	num.NumberType = models.NumberTypeCOCP
	num.SafeCustodyDate = &yesterday
	num.AccountName = "Acme Corp"
	seed(t, st, executor, models.CollectionNumbers, num.ID, &num)

	require.NoError(t, svc.SweepSafeCustodyDates())
	marked := st.NumberByID(num.ID)
	require.NotNil(t, marked)
	assert.True(t, marked.SafeCustodyNotificationSent)
	activityCount := len(st.Activities())

	// 标记是一次性的
	require.NoError(t, svc.SweepSafeCustodyDates())
	assert.Len(t, st.Activities(), activityCount)
}

func TestPruneCompletedRemindersRespectsRetention(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewSweepService(st, executor)

	oldDone := time.Now().AddDate(0, 0, -8)
	recentDone := time.Now().AddDate(0, 0, -1)

	expired := models.ReminderRecord{ID: uuid.NewString(), SrNo: 1, TaskName: "Old",
		AssignedTo: "Ravi", Status: models.ReminderDone, DueDate: oldDone, CompletionDate: &oldDone}
	fresh := models.ReminderRecord{ID: uuid.NewString(), SrNo: 2, TaskName: "Fresh",
		AssignedTo: "Ravi", Status: models.ReminderDone, DueDate: recentDone, CompletionDate: &recentDone}
	pending := models.ReminderRecord{ID: uuid.NewString(), SrNo: 3, TaskName: "Open",
		AssignedTo: "Ravi", Status: models.ReminderPending, DueDate: oldDone}
	seed(t, st, executor, models.CollectionReminders, expired.ID, &expired)
	seed(t, st, executor, models.CollectionReminders, fresh.ID, &fresh)
	seed(t, st, executor, models.CollectionReminders, pending.ID, &pending)

	require.NoError(t, svc.PruneCompletedReminders())

	assert.Nil(t, st.ReminderByID(expired.ID))
	assert.NotNil(t, st.ReminderByID(fresh.ID))
	assert.NotNil(t, st.ReminderByID(pending.ID))
}
