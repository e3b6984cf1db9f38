package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/Gunvolt24/intershop/internal/ports/mocks"
	"github.com/Gunvolt24/intershop/internal/usecase"
	"github.com/golang/mock/gomock"
)

const userID = int64(7)

func TestCreateOrderFromCart_OK(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	items := mocks.NewMockItemReader(ctrl)

	orders.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Order) error {
			if o.UserID != userID || o.Status != domain.StatusProcessing {
				t.Fatalf("bad header: %+v", o)
			}
			if o.CreatedAt.IsZero() {
				t.Fatalf("created_at must be set before insert")
			}
			o.ID = 100
			return nil
		})

	items.EXPECT().GetItems(gomock.Any(), gomock.Any()).
		Return([]domain.Item{
			{ID: 1, Title: "Laptop", Price: 999.99},
			{ID: 2, Title: "Mouse", Price: 19.90},
		}, nil)

	var nextLineID atomic.Int64
	nextLineID.Store(500)
	orders.EXPECT().SaveOrderItem(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, line *domain.OrderItem) error {
			// вызывается из горутин сервиса, поэтому Errorf, а не Fatalf
			if line.OrderID != 100 {
				t.Errorf("line must reference the new order: %+v", line)
			}
			line.ID = nextLineID.Add(1)
			return nil
		})

	svc := usecase.NewOrderService(orders, items, noopLogger{})

	order, dropped, err := svc.CreateOrderFromCart(context.Background(), map[int64]int{1: 2, 2: 1}, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dropped) != 0 {
		t.Fatalf("nothing should be dropped: %v", dropped)
	}
	if order.ID != 100 || len(order.Items) != 2 {
		t.Fatalf("bad order: %+v", order)
	}
	// цены зафиксированы из каталога, количества — из корзины
	if order.Items[0].ItemID != 1 || order.Items[0].Quantity != 2 || order.Items[0].Price != 999.99 {
		t.Fatalf("bad first line: %+v", order.Items[0])
	}
	if want := 2*999.99 + 19.90; order.TotalSum() != want {
		t.Fatalf("total: want %.2f, got %.2f", want, order.TotalSum())
	}
}

func TestCreateOrderFromCart_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := usecase.NewOrderService(mocks.NewMockOrderRepository(ctrl), mocks.NewMockItemReader(ctrl), noopLogger{})

	_, _, err := svc.CreateOrderFromCart(context.Background(), nil, userID)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
}

func TestCreateOrderFromCart_DropsVanishedItems(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	items := mocks.NewMockItemReader(ctrl)

	orders.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Order) error {
			o.ID = 101
			return nil
		})
	items.EXPECT().GetItems(gomock.Any(), gomock.Any()).
		Return([]domain.Item{{ID: 1, Price: 5}}, nil)
	orders.EXPECT().SaveOrderItem(gomock.Any(), gomock.Any()).Return(nil)

	svc := usecase.NewOrderService(orders, items, noopLogger{})

	order, dropped, err := svc.CreateOrderFromCart(context.Background(), map[int64]int{1: 1, 99: 3, 42: 1}, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Items) != 1 || order.Items[0].ItemID != 1 {
		t.Fatalf("only resolved items may become lines: %+v", order.Items)
	}
	if len(dropped) != 2 || dropped[0] != 42 || dropped[1] != 99 {
		t.Fatalf("dropped ids must be reported sorted: %v", dropped)
	}
}

func TestCreateOrderFromCart_HeaderSaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	items := mocks.NewMockItemReader(ctrl)

	saveErr := errors.New("pg down")
	orders.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(saveErr)
	// до разрешения товаров дело не доходит

	svc := usecase.NewOrderService(orders, items, noopLogger{})

	_, _, err := svc.CreateOrderFromCart(context.Background(), map[int64]int{1: 1}, userID)
	if !errors.Is(err, saveErr) {
		t.Fatalf("header error must propagate, got %v", err)
	}
}

func TestCreateOrderFromCart_LineSaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	items := mocks.NewMockItemReader(ctrl)

	orders.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Order) error {
			o.ID = 102
			return nil
		})
	items.EXPECT().GetItems(gomock.Any(), gomock.Any()).
		Return([]domain.Item{{ID: 1, Price: 5}}, nil)

	lineErr := errors.New("pg down")
	orders.EXPECT().SaveOrderItem(gomock.Any(), gomock.Any()).Return(lineErr)

	svc := usecase.NewOrderService(orders, items, noopLogger{})

	_, _, err := svc.CreateOrderFromCart(context.Background(), map[int64]int{1: 1}, userID)
	if !errors.Is(err, lineErr) {
		t.Fatalf("line error must propagate, got %v", err)
	}
}

func TestOrderByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	orders.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, nil)

	svc := usecase.NewOrderService(orders, mocks.NewMockItemReader(ctrl), noopLogger{})

	_, err := svc.OrderByID(context.Background(), 404)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

func TestOrderByID_AttachesLinesAndItems(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	items := mocks.NewMockItemReader(ctrl)

	orders.EXPECT().FindByID(gomock.Any(), int64(100)).
		Return(&domain.Order{ID: 100, UserID: userID, Status: domain.StatusProcessing}, nil)
	orders.EXPECT().FindItemsByOrderID(gomock.Any(), int64(100)).
		Return([]domain.OrderItem{
			{ID: 1, OrderID: 100, ItemID: 1, Quantity: 2, Price: 999.99},
			{ID: 2, OrderID: 100, ItemID: 9, Quantity: 1, Price: 3.50},
		}, nil)
	items.EXPECT().GetItems(gomock.Any(), gomock.Any()).
		Return([]domain.Item{{ID: 1, Title: "Laptop"}}, nil) // товар 9 исчез из каталога

	svc := usecase.NewOrderService(orders, items, noopLogger{})

	order, err := svc.OrderByID(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Items) != 2 {
		t.Fatalf("both lines must survive: %+v", order.Items)
	}
	if order.Items[0].Item == nil || order.Items[0].Item.Title != "Laptop" {
		t.Fatalf("line 1 must carry its catalog item: %+v", order.Items[0])
	}
	// строка исчезнувшего товара сохраняет количество и замороженную цену
	if order.Items[1].Item != nil || order.Items[1].Price != 3.50 {
		t.Fatalf("vanished item line must keep frozen price: %+v", order.Items[1])
	}
}

func TestUserOrders(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	items := mocks.NewMockItemReader(ctrl)

	orders.EXPECT().FindByUserID(gomock.Any(), userID).
		Return([]*domain.Order{{ID: 2}, {ID: 1}}, nil)
	orders.EXPECT().FindItemsByOrderID(gomock.Any(), int64(2)).Return(nil, nil)
	orders.EXPECT().FindItemsByOrderID(gomock.Any(), int64(1)).Return(nil, nil)

	svc := usecase.NewOrderService(orders, items, noopLogger{})

	got, err := svc.UserOrders(context.Background(), userID)
	if err != nil || len(got) != 2 || got[0].ID != 2 {
		t.Fatalf("err=%v orders=%+v", err, got)
	}
}
