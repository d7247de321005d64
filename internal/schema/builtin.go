package schema

// RootCertificatePath is where the TLS firmware variants expect the
// certificate authority of the redis host to be embedded from.
const RootCertificatePath = "embeds/redis_host_root_ca.pem"

const (
	// DefaultVariant is used when the caller does not choose a variant.
	DefaultVariant = "firmware"

	defaultAccessPointSSID     = "orient-beetle setup"
	defaultAccessPointPassword = "orientbeetle"
	defaultFirmwareVersion     = "dev"
)

// Builtin returns fresh copies of the variants shipped with buildenv.
func Builtin() []Schema {
	return []Schema{
		{
			Name: "redis",
			Keys: []Key{
				{Name: "REDIS_PORT", Required: true, Style: StyleRaw},
				{Name: "REDIS_HOST", Required: true, Style: StyleEscaped},
			},
		},
		{
			Name:           "tls-tester",
			CredentialFile: RootCertificatePath,
			Keys: []Key{
				{Name: "WIFI_PASSWORD", Secret: true, Style: StyleShell},
				{Name: "WIFI_SSID", Style: StyleShell},
				{Name: "REDIS_HOST", Required: true, Style: StyleShell},
				{Name: "REDIS_PORT", Required: true, Style: StyleRaw},
				{Name: "REDIS_AUTH", Required: true, Secret: true, Style: StyleShell},
			},
		},
		{
			Name:           "firmware",
			CredentialFile: RootCertificatePath,
			Keys: []Key{
				{Name: "WIFI_SSID", Default: defaultAccessPointSSID, Style: StyleShell},
				{Name: "WIFI_PASSWORD", Default: defaultAccessPointPassword, Secret: true, Style: StyleShell},
				{Name: "REDIS_HOST", Required: true, Style: StyleShell},
				{Name: "REDIS_PORT", Required: true, Style: StyleRaw},
				{Name: "REDIS_AUTH_USERNAME", Required: true, Style: StyleShell},
				{Name: "REDIS_AUTH_PASSWORD", Required: true, Secret: true, Style: StyleShell},
				{Name: "BEETLE_VERSION", Default: defaultFirmwareVersion, Style: StyleShell},
			},
		},
	}
}
