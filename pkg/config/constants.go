package config

const (
	// EnvPrefix is the prefix envconfig uses when resolving variables.
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)
