package service

// DeliveryServiceWrapper decorates a DeliveryService, e.g. with validation.
type DeliveryServiceWrapper interface {
	Wrap(DeliveryService) DeliveryService
}
