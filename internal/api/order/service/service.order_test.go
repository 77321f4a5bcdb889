// Package ordersvc - Test các hàm thuần của đơn hàng: clamp số lượng,
// snapshot dòng hàng và tính tổng.
package ordersvc

import (
	"testing"

	catalogmodels "moa_commerce/internal/api/catalog/models"
	"moa_commerce/internal/api/order/models"
)

func TestClampQty(t *testing.T) {
	cases := []struct {
		name    string
		qty     int64
		restock bool
		want    int64
	}{
		{"trong khoảng", 5, false, 5},
		{"âm về 0", -3, false, 0},
		{"vượt trần về 9999", 50000, false, 9999},
		{"đúng trần", 9999, false, 9999},
		{"chờ nhập lại hàng luôn 0", 5, true, 0},
		{"chờ nhập lại hàng kể cả vượt trần", 50000, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampQty(tc.qty, tc.restock); got != tc.want {
				t.Errorf("ClampQty(%d, %v) = %d, want %d", tc.qty, tc.restock, got, tc.want)
			}
		})
	}
}

func TestSnapshotLine(t *testing.T) {
	p := catalogmodels.Product{
		ProductID:  "PD-1",
		Name:       "대나무 채반",
		Price:      2500,
		CategoryL1: "주방",
		Link:       "https://example.com/pd-1",
	}
	line := snapshotLine(p, 3)
	if line.ProductID != "PD-1" || line.Name != "대나무 채반" {
		t.Errorf("snapshot phải chép định danh và tên: %+v", line)
	}
	if line.Price != 2500 || line.Qty != 3 || line.Subtotal != 7500 {
		t.Errorf("subtotal = price*qty, got price=%d qty=%d subtotal=%d", line.Price, line.Qty, line.Subtotal)
	}
	if line.CategoryL1 != "주방" || line.Link != "https://example.com/pd-1" {
		t.Errorf("snapshot thiếu categoryL1/link: %+v", line)
	}
}

func TestSnapshotLine_RestockPendingForcesZero(t *testing.T) {
	p := catalogmodels.Product{ProductID: "PD-2", Name: "봉투", Price: 1000, Status: "재입고 예정"}
	line := snapshotLine(p, 4)
	if line.Qty != 0 || line.Subtotal != 0 {
		t.Errorf("sản phẩm chờ nhập lại hàng phải có qty=0 subtotal=0, got qty=%d subtotal=%d", line.Qty, line.Subtotal)
	}
}

func TestSnapshotLine_MissingPriceAsZero(t *testing.T) {
	p := catalogmodels.Product{ProductID: "PD-3", Name: "노트"}
	line := snapshotLine(p, 2)
	if line.Price != 0 || line.Subtotal != 0 {
		t.Errorf("giá vắng mặt tính là 0, got price=%d subtotal=%d", line.Price, line.Subtotal)
	}
	if line.Qty != 2 {
		t.Errorf("qty vẫn giữ nguyên khi giá 0, got %d", line.Qty)
	}
}

func TestSumTotals(t *testing.T) {
	items := []models.OrderItem{
		{Qty: 2, Subtotal: 2000},
		{Qty: 0, Subtotal: 0},
		{Qty: 3, Subtotal: 7500},
	}
	totalQty, totalPrice := sumTotals(items)
	if totalQty != 5 || totalPrice != 9500 {
		t.Errorf("sumTotals = (%d, %d), want (5, 9500)", totalQty, totalPrice)
	}

	totalQty, totalPrice = sumTotals(nil)
	if totalQty != 0 || totalPrice != 0 {
		t.Errorf("danh sách rỗng phải ra (0, 0), got (%d, %d)", totalQty, totalPrice)
	}
}

func TestFinalTotal(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		discount int64
		want     int64
	}{
		{"không chiết khấu", 9500, 0, 9500},
		{"chiết khấu thường", 9500, 500, 9000},
		{"chiết khấu vượt tổng về 0", 9500, 20000, 0},
		{"chiết khấu âm bị bỏ qua", 9500, -100, 9500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := finalTotal(tc.total, tc.discount); got != tc.want {
				t.Errorf("finalTotal(%d, %d) = %d, want %d", tc.total, tc.discount, got, tc.want)
			}
		})
	}
}
