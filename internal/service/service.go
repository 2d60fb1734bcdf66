package service

import (
	"firefly/internal/config"
)

type Service struct {
	Token   TokenService
	Payment PaymentService
}

func NewService(cfg *config.Config, intents IntentCreator) *Service {
	return &Service{
		Token:   NewTokenService(cfg),
		Payment: NewPaymentService(intents),
	}
}
