//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import "context"

type client interface {
	GetJSON(ctx context.Context, method, path string, out any) error
}
