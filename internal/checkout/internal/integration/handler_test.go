// Copyright 2024 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/eshop/internal/checkout/internal/repository"
	"github.com/ecodeclub/eshop/internal/checkout/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/checkout/internal/service"
	"github.com/ecodeclub/eshop/internal/checkout/internal/web"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/notification"
	"github.com/ecodeclub/eshop/internal/pkg/money"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/shipping"
	"github.com/ecodeclub/eshop/internal/subscription"
	"github.com/ecodeclub/eshop/internal/tax"
	"github.com/ecodeclub/eshop/internal/test"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUID = int64(234)

type fakeCatalog struct{}

func (f *fakeCatalog) FindVariantBySN(_ context.Context, sn string) (product.Variant, error) {
	if sn != "VAR-FAMILY" {
		return product.Variant{}, fmt.Errorf("商品规格的SN非法: %s", sn)
	}
	return product.Variant{
		ID:    1,
		SN:    "VAR-FAMILY",
		Name:  "招牌辣酱 家庭装",
		Size:  "family",
		Price: 699,
		Stock: 10,
	}, nil
}

func (f *fakeCatalog) FindVariantByID(_ context.Context, _ int64) (product.Variant, error) {
	return product.Variant{}, nil
}

func (f *fakeCatalog) FindProductBySN(_ context.Context, _ string) (product.Product, error) {
	return product.Product{}, nil
}

func (f *fakeCatalog) SaveProduct(_ context.Context, _ product.Product) (int64, error) {
	return 0, nil
}

func (f *fakeCatalog) PublishProduct(_ context.Context, _ int64) error { return nil }

func (f *fakeCatalog) UnpublishProduct(_ context.Context, _ int64) error { return nil }

func (f *fakeCatalog) ListProducts(_ context.Context, _, _ int) (int64, []product.Product, error) {
	return 0, nil, nil
}

type fakeCoupons struct{}

func (f *fakeCoupons) Validate(_ context.Context, code string) (coupon.Coupon, error) {
	if code != "FAMILY" {
		return coupon.Coupon{}, coupon.ErrCouponInvalid
	}
	return coupon.Coupon{
		ID:         33,
		Code:       "FAMILY",
		Kind:       coupon.KindPercentage,
		Value:      2500,
		Status:     coupon.StatusActive,
		UsageLimit: coupon.UsageUnlimited,
	}, nil
}

func (f *fakeCoupons) Save(_ context.Context, _ coupon.Coupon) (int64, error) { return 0, nil }

func (f *fakeCoupons) Disable(_ context.Context, _ int64) error { return nil }

func (f *fakeCoupons) ListCoupons(_ context.Context, _, _ int) (int64, []coupon.Coupon, error) {
	return 0, nil, nil
}

type fakeShipping struct{}

func (f *fakeShipping) Quote(_ context.Context, _, _ string, _ int64) (shipping.Quote, error) {
	return shipping.Quote{
		Options: []shipping.Option{
			{ServiceID: shipping.PickupServiceID, Name: "到店自提", Cost: 0, ETA: "随时"},
			{ServiceID: "ground", Name: "陆运", Cost: 995, ETA: "5-7个工作日"},
		},
		DestState: "NY",
	}, nil
}

type fakeTax struct{}

func (f *fakeTax) Estimate(_ context.Context, taxable int64, _, _ string) (tax.Quote, error) {
	return tax.Quote{
		Amount:       money.RateOf(taxable, 450),
		Rate:         450,
		Jurisdiction: "NY",
	}, nil
}

type fakeSubscriptions struct{}

func (f *fakeSubscriptions) IsSubscriber(_ context.Context, _ int64) (bool, error) {
	return false, nil
}

func (f *fakeSubscriptions) Create(_ context.Context, _ subscription.Subscription) (int64, error) {
	return 0, nil
}

func (f *fakeSubscriptions) Cancel(_ context.Context, _ int64) error { return nil }

func (f *fakeSubscriptions) FindByUID(_ context.Context, _ int64) (subscription.Subscription, error) {
	return subscription.Subscription{}, nil
}

type fakeVerifier struct{}

func (f *fakeVerifier) CapturedAmount(_ context.Context, authRef string) (int64, error) {
	// 所有测试授权凭据的实际扣款金额都是标准场景的1903分
	if authRef == "" {
		return 0, fmt.Errorf("授权凭据为空")
	}
	return 1903, nil
}

type noopRelay struct{}

func (f *noopRelay) Notify(_ context.Context, _ notification.Event) {}

func TestCheckoutHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	// runID 混入请求ID, 避免和redis里上次运行留下的去重键撞上
	runID string
}

// rid 生成本次运行内唯一的请求ID
func (s *HandlerTestSuite) rid(name string) string {
	return fmt.Sprintf("%s-%s", name, s.runID)
}

func (s *HandlerTestSuite) SetupSuite() {
	s.runID = fmt.Sprintf("%d", time.Now().UnixNano())
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	require.NoError(s.T(), s.db.AutoMigrate(&variant{}, &couponRow{}))

	repo := repository.NewOrderRepository(dao.NewOrderGORMDAO(s.db))
	svc := service.NewService(service.Config{},
		&fakeCatalog{},
		&fakeCoupons{},
		&fakeShipping{},
		&fakeTax{},
		&fakeSubscriptions{},
		&fakeVerifier{},
		&noopRelay{},
		repo,
		sequencenumber.NewGenerator())
	handler := web.NewHandler(svc, testioc.InitCache())

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	handler.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) SetupTest() {
	s.NoError(s.db.Create(&variant{Id: 1, Stock: 10}).Error)
}

func (s *HandlerTestSuite) TearDownSuite() {
	s.NoError(s.db.Exec("DROP TABLE `orders`").Error)
	s.NoError(s.db.Exec("DROP TABLE `variants`").Error)
	s.NoError(s.db.Exec("DROP TABLE `coupons`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `orders`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `variants`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `coupons`").Error)
}

func (s *HandlerTestSuite) quoteReq() web.QuoteReq {
	return web.QuoteReq{
		VariantSN:         "VAR-FAMILY",
		Quantity:          2,
		DestZip:           "10001",
		CouponCode:        "FAMILY",
		ShippingServiceID: "ground",
	}
}

func (s *HandlerTestSuite) commitReq(requestID, authRef string, captured int64) web.CommitReq {
	return web.CommitReq{
		RequestID:      requestID,
		QuoteReq:       s.quoteReq(),
		AuthRef:        authRef,
		CapturedAmount: captured,
		Customer:       web.CustomerVO{Name: "王小明", Email: "xiaoming@example.com"},
		Address:        web.AddressVO{Street: "100 Main St", City: "New York", State: "NY", Zip: "10001"},
	}
}

func (s *HandlerTestSuite) TestQuote() {
	req, err := http.NewRequest(http.MethodPost, "/checkout/quote", iox.NewJSONReader(s.quoteReq()))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.BreakdownVO]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(s.T(), 200, recorder.Code)
	got := recorder.MustScan().Data
	s.Equal(int64(1398), got.Subtotal)
	s.Equal(int64(995), got.Shipping)
	s.Equal(int64(108), got.Tax)
	s.Equal(int64(598), got.CouponDiscount)
	s.Equal(int64(0), got.SubscriberDiscount)
	s.Equal(int64(1903), got.Total)
	s.Len(got.Options, 2)
	s.Equal("pickup", got.Options[0].ServiceID)
}

func (s *HandlerTestSuite) TestCommit() {
	req, err := http.NewRequest(http.MethodPost, "/checkout/commit",
		iox.NewJSONReader(s.commitReq(s.rid("req-commit"), "auth_hdl_001", 1903)))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CommitResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(s.T(), 200, recorder.Code)
	resp := recorder.MustScan()
	s.Equal(0, resp.Code)
	s.NotEmpty(resp.Data.OrderSN)
	s.Equal(uint8(2), resp.Data.Status)
	s.Equal(int64(1903), resp.Data.Breakdown.Total)

	// 库存已在提交事务里扣减
	var v variant
	s.NoError(s.db.First(&v, 1).Error)
	s.Equal(int64(8), v.Stock)

	// 订单详情能按SN查回, 且只认本人的订单
	detailReq, err := http.NewRequest(http.MethodPost, "/order/detail",
		iox.NewJSONReader(web.RetrieveOrderDetailReq{SN: resp.Data.OrderSN}))
	require.NoError(s.T(), err)
	detailReq.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.OrderVO]()
	s.server.ServeHTTP(detailRecorder, detailReq)
	require.Equal(s.T(), 200, detailRecorder.Code)
	order := detailRecorder.MustScan().Data
	s.Equal(resp.Data.OrderSN, order.SN)
	s.Equal("招牌辣酱 家庭装", order.ItemName)
	s.Equal("FAMILY", order.CouponCode)
	s.Equal("ground", order.ShippingSvc)
	s.Equal(int64(1903), order.Breakdown.Total)
}

func (s *HandlerTestSuite) TestCommitDuplicateRequestID() {
	for i, wantCode := range []int{200, 500} {
		req, err := http.NewRequest(http.MethodPost, "/checkout/commit",
			iox.NewJSONReader(s.commitReq(s.rid("req-dup"), fmt.Sprintf("auth_hdl_10%d", i), 1903)))
		require.NoError(s.T(), err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.CommitResp]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(s.T(), wantCode, recorder.Code)
		if wantCode != 200 {
			s.Equal(605002, recorder.MustScan().Code)
		}
	}
}

func (s *HandlerTestSuite) TestCommitDuplicateAuthRef() {
	for i, wantResultCode := range []int{0, 605007} {
		req, err := http.NewRequest(http.MethodPost, "/checkout/commit",
			iox.NewJSONReader(s.commitReq(s.rid(fmt.Sprintf("req-authdup-%d", i)), "auth_hdl_200", 1903)))
		require.NoError(s.T(), err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.CommitResp]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(s.T(), 200, recorder.Code)
		s.Equal(wantResultCode, recorder.MustScan().Code)
	}
	// 重复凭据的那一单没有再扣库存
	var v variant
	s.NoError(s.db.First(&v, 1).Error)
	s.Equal(int64(8), v.Stock)
}

func (s *HandlerTestSuite) TestCommitTotalMismatch() {
	// 客户端回显金额与服务端重算金额不一致
	req, err := http.NewRequest(http.MethodPost, "/checkout/commit",
		iox.NewJSONReader(s.commitReq(s.rid("req-mismatch"), "auth_hdl_300", 1800)))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CommitResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(s.T(), 200, recorder.Code)
	s.Equal(605006, recorder.MustScan().Code)

	var count int64
	s.NoError(s.db.Model(&dao.Order{}).Count(&count).Error)
	s.Equal(int64(0), count)
}

func (s *HandlerTestSuite) TestListOrders() {
	req, err := http.NewRequest(http.MethodPost, "/checkout/commit",
		iox.NewJSONReader(s.commitReq(s.rid("req-list"), "auth_hdl_400", 1903)))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CommitResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	listReq, err := http.NewRequest(http.MethodPost, "/order/list",
		iox.NewJSONReader(web.ListOrdersReq{Offset: 0, Limit: 10}))
	require.NoError(s.T(), err)
	listReq.Header.Set("content-type", "application/json")
	listRecorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(listRecorder, listReq)
	require.Equal(s.T(), 200, listRecorder.Code)
	resp := listRecorder.MustScan().Data
	s.Equal(int64(1), resp.Total)
	s.Len(resp.Orders, 1)
}
