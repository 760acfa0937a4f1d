package providers

// ISecurityProvider defines API security logic.
type ISecurityProvider interface {
	IsEnabled() bool
	GetUser(headers map[string][]string) (string, error)
}
