package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sim_inventory/internal/models"
)

func TestAddNumberRejectsDuplicateAcrossCollections(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	sale := newSaleRecord("9876543210", models.UpcPending)
	seed(t, st, executor, models.CollectionSales, sale.ID, &sale)

	_, err := svc.AddNumber(adminActor, NewNumberData{
		Mobile:       "9876543210",
		Status:       models.StatusRTS,
		PurchaseDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrDuplicateMobile)
}

func TestAddNumberConditionalRequirements(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)
	now := time.Now()

	_, err := svc.AddNumber(adminActor, NewNumberData{
		Mobile: "9000000001", Status: models.StatusNonRTS, PurchaseDate: now,
	})
	assert.ErrorIs(t, err, ErrRtsDateRequired)

	_, err = svc.AddNumber(adminActor, NewNumberData{
		Mobile: "9000000001", Status: models.StatusRTS,
		NumberType: models.NumberTypeCOCP, PurchaseDate: now,
	})
	assert.ErrorIs(t, err, ErrSafeCustodyRequired)

	_, err = svc.AddNumber(adminActor, NewNumberData{
		Mobile: "9000000001", Status: models.StatusRTS,
		NumberType: models.NumberTypeCOCP, SafeCustodyDate: &now, PurchaseDate: now,
	})
	assert.ErrorIs(t, err, ErrAccountNameRequired)

	_, err = svc.AddNumber(adminActor, NewNumberData{
		Mobile: "9000000001", Status: models.StatusRTS,
		OwnershipType: models.OwnershipPartnership, PurchaseDate: now,
	})
	assert.ErrorIs(t, err, ErrPartnerNameRequired)
}

func TestAddNumberAppliesDefaults(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	record, err := svc.AddNumber(employeeActor, NewNumberData{
		Mobile:       "9000000002",
		Status:       models.StatusRTS,
		PurchaseDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, record.SrNo)
	assert.Equal(t, models.MarkPending, record.UploadStatus)
	assert.Equal(t, models.NumberTypePrepaid, record.NumberType)
	assert.Equal(t, models.OwnershipIndividual, record.OwnershipType)
	assert.Equal(t, models.LocationStore, record.LocationType)
	assert.Equal(t, models.UpcPending, record.UpcStatus)
	assert.Equal(t, "Ravi", record.AssignedTo)
	assert.Equal(t, 2, record.Sum)

	require.Len(t, st.Numbers(), 1)
}

func TestDeleteNumbersRequiresAdmin(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	num := newNumberRecord("9000000003")
	seed(t, st, executor, models.CollectionNumbers, num.ID, &num)

	err := svc.DeleteNumbers(employeeActor, []string{num.ID})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	require.Len(t, st.Numbers(), 1)

	require.NoError(t, svc.DeleteNumbers(adminActor, []string{num.ID}))
	assert.Empty(t, st.Numbers())
}

func TestSellNumberMovesRecordWithSnapshot(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	num := newNumberRecord("9000000004")
	seed(t, st, executor, models.CollectionNumbers, num.ID, &num)

	saleDate := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SellNumber(adminActor, num.ID, SaleDetails{
		SalePrice: 2500, SoldTo: "numberwale", SaleDate: saleDate,
	}))

	assert.Empty(t, st.Numbers())
	sales := st.Sales()
	require.Len(t, sales, 1)
	sale := sales[0]
	assert.Equal(t, "9000000004", sale.Mobile)
	assert.Equal(t, models.MarkPending, sale.PaymentStatus)
	assert.Equal(t, models.UpcPending, sale.UpcStatus)
	assert.Equal(t, models.MarkPending, sale.PortOutStatus)
	assert.Equal(t, 2500.0, sale.SalePrice)
	// 快照保留了售出前的完整状态
	assert.Equal(t, num.Mobile, sale.OriginalNumberData.Mobile)
	assert.Equal(t, num.AssignedTo, sale.OriginalNumberData.AssignedTo)
	assert.Equal(t, num.PurchasePrice, sale.OriginalNumberData.PurchasePrice)
}

func TestCancelSaleRestoresWithUnassignedReset(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	num := newNumberRecord("9000000005")
	seed(t, st, executor, models.CollectionNumbers, num.ID, &num)
	require.NoError(t, svc.SellNumber(adminActor, num.ID, SaleDetails{
		SalePrice: 2000, SoldTo: "numberatm", SaleDate: time.Now(),
	}))
	saleID := st.Sales()[0].ID

	require.NoError(t, svc.CancelSale(adminActor, saleID))

	assert.Empty(t, st.Sales())
	numbers := st.Numbers()
	require.Len(t, numbers, 1)
	restored := numbers[0]
	assert.NotEqual(t, num.ID, restored.ID) // 还原生成新文档 id
	assert.Equal(t, num.Mobile, restored.Mobile)
	assert.Equal(t, num.SrNo, restored.SrNo)
	assert.Equal(t, num.PurchasePrice, restored.PurchasePrice)
	assert.Equal(t, models.Unassigned, restored.AssignedTo)
	assert.Equal(t, models.Unassigned, restored.Name)
}

func TestMarkSaleAsPortedOutRequiresGeneratedUpc(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	sale := newSaleRecord("9000000006", models.UpcPending)
	seed(t, st, executor, models.CollectionSales, sale.ID, &sale)

	err := svc.MarkSaleAsPortedOut(adminActor, sale.ID)
	assert.ErrorIs(t, err, ErrUpcNotGenerated)
	require.Len(t, st.Sales(), 1)

	require.NoError(t, svc.UpdateSaleStatuses(adminActor, sale.ID, SaleStatuses{
		PaymentStatus: models.MarkDone, UpcStatus: models.UpcGenerated,
	}))
	require.NoError(t, svc.MarkSaleAsPortedOut(adminActor, sale.ID))

	assert.Empty(t, st.Sales())
	portOuts := st.PortOuts()
	require.Len(t, portOuts, 1)
	assert.Equal(t, models.MarkDone, portOuts[0].PaymentStatus)
	assert.Equal(t, sale.CreatedBy, portOuts[0].CreatedBy)
	assert.False(t, portOuts[0].PortOutDate.IsZero())
}

func TestBulkMarkAsPortedOutSkipsUngenerated(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	ready := newSaleRecord("9000000007", models.UpcGenerated)
	pending1 := newSaleRecord("9000000008", models.UpcPending)
	pending2 := newSaleRecord("9000000009", models.UpcPending)
	seed(t, st, executor, models.CollectionSales, ready.ID, &ready)
	seed(t, st, executor, models.CollectionSales, pending1.ID, &pending1)
	seed(t, st, executor, models.CollectionSales, pending2.ID, &pending2)

	result, err := svc.BulkMarkAsPortedOut(adminActor, []string{ready.ID, pending1.ID, pending2.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Moved)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, st.PortOuts(), 1)
	assert.Len(t, st.Sales(), 2)
}

func TestBulkMarkAsPortedOutAllIneligible(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	sale := newSaleRecord("9000000010", models.UpcPending)
	seed(t, st, executor, models.CollectionSales, sale.ID, &sale)

	_, err := svc.BulkMarkAsPortedOut(adminActor, []string{sale.ID})
	assert.ErrorIs(t, err, ErrNoEligibleRecords)
}

func TestDeletePortOutsBlockedByPendingPayment(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	done1 := newPortOutRecord("9000000011", models.MarkDone)
	done2 := newPortOutRecord("9000000012", models.MarkDone)
	pending := newPortOutRecord("9000000013", models.MarkPending)
	seed(t, st, executor, models.CollectionPortOuts, done1.ID, &done1)
	seed(t, st, executor, models.CollectionPortOuts, done2.ID, &done2)
	seed(t, st, executor, models.CollectionPortOuts, pending.ID, &pending)

	err := svc.DeletePortOuts(adminActor, []string{done1.ID, done2.ID, pending.ID})
	var blocked *PortOutPaymentPendingError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, 1, blocked.Blocked)
	// 整批被阻断，一条也不删除
	assert.Len(t, st.PortOuts(), 3)

	require.NoError(t, svc.DeletePortOuts(adminActor, []string{done1.ID, done2.ID}))
	assert.Len(t, st.PortOuts(), 1)
}

func TestPreBookAndCancelRestoresVerbatim(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	num := newNumberRecord("9000000014")
	num.Notes = "VIP customer hold"
	seed(t, st, executor, models.CollectionNumbers, num.ID, &num)

	require.NoError(t, svc.MarkAsPreBooked(employeeActor, []string{num.ID}))
	assert.Empty(t, st.Numbers())
	preBookings := st.PreBookings()
	require.Len(t, preBookings, 1)
	assert.Equal(t, num.Sum, preBookings[0].Sum)
	assert.Equal(t, num.UploadStatus, preBookings[0].UploadStatus)

	require.NoError(t, svc.CancelPreBooking(employeeActor, preBookings[0].ID))
	assert.Empty(t, st.PreBookings())
	numbers := st.Numbers()
	require.Len(t, numbers, 1)
	// 与取消销售不同：分配关系按快照逐字还原
	assert.Equal(t, num.AssignedTo, numbers[0].AssignedTo)
	assert.Equal(t, num.Name, numbers[0].Name)
	assert.Equal(t, num.Notes, numbers[0].Notes)
}

func TestSellPreBookedNumberCarriesPreBookingFields(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	num := newNumberRecord("9000000015")
	num.UploadStatus = models.MarkDone
	seed(t, st, executor, models.CollectionNumbers, num.ID, &num)
	require.NoError(t, svc.MarkAsPreBooked(adminActor, []string{num.ID}))
	preBooking := st.PreBookings()[0]

	require.NoError(t, svc.SellPreBookedNumber(adminActor, preBooking.ID, SaleDetails{
		SalePrice: 3000, SoldTo: "vipnumberstore", SaleDate: time.Now(),
	}))

	assert.Empty(t, st.PreBookings())
	sales := st.Sales()
	require.Len(t, sales, 1)
	assert.Equal(t, preBooking.Sum, sales[0].Sum)
	assert.Equal(t, models.MarkDone, sales[0].UploadStatus)
	assert.Equal(t, preBooking.OriginalNumberData.Mobile, sales[0].OriginalNumberData.Mobile)
}

func TestDeleteDealerPurchasesSkipsUnqualified(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	q1 := newDealerPurchaseRecord("9000000016", models.MarkDone, models.MarkDone, models.UpcGenerated)
	q2 := newDealerPurchaseRecord("9000000017", models.MarkDone, models.MarkDone, models.UpcGenerated)
	s1 := newDealerPurchaseRecord("9000000018", models.MarkPending, models.MarkDone, models.UpcGenerated)
	s2 := newDealerPurchaseRecord("9000000019", models.MarkDone, models.MarkPending, models.UpcGenerated)
	s3 := newDealerPurchaseRecord("9000000020", models.MarkDone, models.MarkDone, models.UpcPending)
	for _, record := range []*models.DealerPurchaseRecord{&q1, &q2, &s1, &s2, &s3} {
		seed(t, st, executor, models.CollectionDealerPurchases, record.ID, record)
	}

	result, err := svc.DeleteDealerPurchases(adminActor, []string{q1.ID, q2.ID, s1.ID, s2.ID, s3.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Deleted)
	assert.Equal(t, 3, result.Skipped)
	assert.Len(t, st.DealerPurchases(), 3)
}

func TestAddDealerPurchaseParticipatesInUniqueness(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	require.NoError(t, svc.AddDealerPurchase(adminActor, NewDealerPurchaseData{
		Mobile: "9000000021", DealerName: "Sharma Telecom", Price: 800,
	}))
	purchases := st.DealerPurchases()
	require.Len(t, purchases, 1)
	assert.Equal(t, models.MarkPending, purchases[0].PaymentStatus)
	assert.Equal(t, models.MarkPending, purchases[0].PortOutStatus)
	assert.Equal(t, models.UpcPending, purchases[0].UpcStatus)

	// 同号码不能再进主库存
	_, err := svc.AddNumber(adminActor, NewNumberData{
		Mobile: "9000000021", Status: models.StatusRTS, PurchaseDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrDuplicateMobile)
}

func TestUpdateNumberStatusClearsRtsDateOnRts(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	rtsDate := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	num := newNumberRecord("9000000022")
	num.Status = models.StatusNonRTS
	num.RTSDate = &rtsDate
	seed(t, st, executor, models.CollectionNumbers, num.ID, &num)

	// 转 Non-RTS 必须带日期
	err := svc.UpdateNumberStatus(adminActor, num.ID, models.StatusNonRTS, nil, "")
	assert.ErrorIs(t, err, ErrRtsDateRequired)

	require.NoError(t, svc.UpdateNumberStatus(adminActor, num.ID, models.StatusRTS, nil, "activated early"))
	updated := st.NumberByID(num.ID)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusRTS, updated.Status)
	assert.Nil(t, updated.RTSDate)
	assert.Contains(t, updated.Notes, "activated early")
}

func TestBulkSellAssignsSequentialSrNo(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewLifecycleService(st, executor)

	first := newNumberRecord("9000000023")
	second := newNumberRecord("9000000024")
	seed(t, st, executor, models.CollectionNumbers, first.ID, &first)
	seed(t, st, executor, models.CollectionNumbers, second.ID, &second)

	require.NoError(t, svc.BulkSellNumbers(adminActor, []string{first.ID, second.ID}, SaleDetails{
		SalePrice: 1200, SoldTo: "numberspoint", SaleDate: time.Now(),
	}))

	sales := st.Sales()
	require.Len(t, sales, 2)
	srNos := map[int]bool{sales[0].SrNo: true, sales[1].SrNo: true}
	assert.True(t, srNos[1] && srNos[2], "序号应连续分配: %v", srNos)
}
