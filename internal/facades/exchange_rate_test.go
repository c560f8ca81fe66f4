package facades

import (
	"context"
	"errors"
	"testing"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
)

// --- Fake gRPC client ---
type fakeExchangeClient struct {
	rateForCurrency float32
	err             error
}

func (f *fakeExchangeClient) GetExchangeRates(ctx context.Context, _ *pb.Empty, opts ...grpc.CallOption) (*pb.ExchangeRatesResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRatesResponse{}, nil
}

func (f *fakeExchangeClient) GetExchangeRateForCurrency(ctx context.Context, req *pb.CurrencyRequest, opts ...grpc.CallOption) (*pb.ExchangeRateResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRateResponse{FromCurrency: req.FromCurrency, ToCurrency: req.ToCurrency, Rate: f.rateForCurrency}, nil
}

// --- Tests ---
func TestGetRate(t *testing.T) {
	client := &fakeExchangeClient{rateForCurrency: 0.25}
	facade := NewExchangeRatesGRPCFacade(client)

	rate, err := facade.GetRate(context.Background(), "USD", "ETH")
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.25").Equal(rate))
}

func TestGetRate_Errors(t *testing.T) {
	facade := NewExchangeRatesGRPCFacade(&fakeExchangeClient{err: errors.New("grpc error")})
	rate, err := facade.GetRate(context.Background(), "USD", "ETH")
	assert.Error(t, err)
	assert.True(t, rate.IsZero())

	facade = NewExchangeRatesGRPCFacade(&fakeExchangeClient{rateForCurrency: 0})
	_, err = facade.GetRate(context.Background(), "USD", "ETH")
	assert.Error(t, err)
}
