//go:generate go run go.uber.org/mock/mockgen -source=navigator.go -destination=../../mocks/mock_navigator.go -package=mocks
package output

// Navigator performs page navigation.
type Navigator interface {
	Navigate(target string)
}
