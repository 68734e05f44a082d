package instance

import "os"

// GetID returns this server instance's identifier for log correlation when
// several replicas run behind a load balancer.
func GetID() string {
	if id := os.Getenv("STOREFRONT_INSTANCE_ID"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "storefront-0"
}
