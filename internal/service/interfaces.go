//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"
	"encoding/json"

	"github.com/Chakshu1409/fnp-integrations/models"
)

// DeliveryService quotes and places deliveries through a provider and keeps
// a ledger of the successful ones.
type DeliveryService interface {
	GetQuotation(ctx context.Context, req models.DeliveryRequestWrapper) (*models.QuotationResponse, error)
	PlaceOrder(ctx context.Context, req models.OrderRequestWrapper) (*models.OrderResponse, error)
	FindOrder(ctx context.Context, orderID string) (models.DispatchRecord, error)
}

// ExternalAPIService is a passthrough to the configured external API.
// Get, Post, Put and Delete fail on any upstream error; GetSafe returns a
// nil result instead.
type ExternalAPIService interface {
	Get(ctx context.Context, endpoint string) (json.RawMessage, error)
	Post(ctx context.Context, endpoint string, body any) (json.RawMessage, error)
	Put(ctx context.Context, endpoint string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, endpoint string) (json.RawMessage, error)
	GetSafe(ctx context.Context, endpoint string) (json.RawMessage, error)
	BaseURL() string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
	GetHealth(ctx context.Context) models.HealthInfo
}

type AuthService interface {
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
