package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name LifecycleService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename lifecycle_service_mock.go --with-expecter
//go:generate mockery --name RenegotiationService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename renegotiation_service_mock.go --with-expecter
