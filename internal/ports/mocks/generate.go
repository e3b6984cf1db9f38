//go:generate mockgen -source=../item_repository.go    -destination=./mock_item_repository.go    -package=mocks
//go:generate mockgen -source=../order_repository.go   -destination=./mock_order_repository.go   -package=mocks
//go:generate mockgen -source=../cache_store.go        -destination=./mock_cache_store.go        -package=mocks
//go:generate mockgen -source=../item_read_service.go  -destination=./mock_item_read_service.go  -package=mocks
//go:generate mockgen -source=../payment_client.go     -destination=./mock_payment_client.go     -package=mocks
//go:generate mockgen -source=../item_validator.go     -destination=./mock_item_validator.go     -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks

package mocks
