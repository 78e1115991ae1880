package config

// URLScanConfig holds the heuristic tables used by the URL risk scorer
type URLScanConfig struct {
	Shorteners     []string
	SuspiciousTLDs []string
	HostPatterns   []string
}

// HomographConfig holds the reference brand list for typosquat matching
type HomographConfig struct {
	BrandDomains []string
}

// DNSConfig holds the upstream resolver settings
type DNSConfig struct {
	Servers []string
	Timeout string
}

// AuthConfig holds the SPF/DKIM check settings
type AuthConfig struct {
	DKIMSelectors []string
}

// GetURLScan returns the URL scanning configuration
func (c *Config) GetURLScan() URLScanConfig {
	return URLScanConfig{
		Shorteners:     c.GetStringSlice("urlscan.shorteners"),
		SuspiciousTLDs: c.GetStringSlice("urlscan.suspicious_tlds"),
		HostPatterns:   c.GetStringSlice("urlscan.host_patterns"),
	}
}

// GetHomograph returns the homograph detection configuration
func (c *Config) GetHomograph() HomographConfig {
	return HomographConfig{
		BrandDomains: c.GetStringSlice("homograph.brand_domains"),
	}
}

// GetDNS returns the DNS resolver configuration
func (c *Config) GetDNS() DNSConfig {
	return DNSConfig{
		Servers: c.GetStringSlice("dns.servers"),
		Timeout: c.GetString("dns.timeout"),
	}
}

// GetAuth returns the domain authentication configuration
func (c *Config) GetAuth() AuthConfig {
	return AuthConfig{
		DKIMSelectors: c.GetStringSlice("auth.dkim_selectors"),
	}
}
