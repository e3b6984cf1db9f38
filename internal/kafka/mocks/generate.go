//go:generate mockgen -source=../consumer.go -destination=./mock_consumer.go -package=mocks
package mocks
