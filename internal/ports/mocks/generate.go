//go:generate mockgen -source=../content_source.go       -destination=./mock_content_source.go       -package=mocks
//go:generate mockgen -source=../content_cache.go        -destination=./mock_content_cache.go        -package=mocks
//go:generate mockgen -source=../snapshot_store.go       -destination=./mock_snapshot_store.go       -package=mocks
//go:generate mockgen -source=../order_repository.go     -destination=./mock_order_repository.go     -package=mocks
//go:generate mockgen -source=../library_repository.go   -destination=./mock_library_repository.go   -package=mocks
//go:generate mockgen -source=../content_read_service.go -destination=./mock_content_read_service.go -package=mocks
//go:generate mockgen -source=../order_write_service.go  -destination=./mock_order_write_service.go  -package=mocks
//go:generate mockgen -source=../event_validator.go      -destination=./mock_event_validator.go      -package=mocks
//go:generate mockgen -source=../logger.go               -destination=./mock_logger.go               -package=mocks
//go:generate mockgen -source=../message_consumer.go     -destination=./mock_message_consumer.go     -package=mocks

package mocks
