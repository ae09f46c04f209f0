// Package inventoryv1 holds the generated bookstore.inventory.v1 messages and
// gRPC bindings. The source lives in api/inventory/v1/inventory.proto.
package inventoryv1

//go:generate protoc -I ../../../../api --go_out=../../../.. --go_opt=module=github.com/AndySun25/bookstore --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/AndySun25/bookstore inventory/v1/inventory.proto
