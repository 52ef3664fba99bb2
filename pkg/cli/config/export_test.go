package config

// SetPath sets the configuration file path directly, bypassing flag parsing
func (c *AppConfig) SetPath(path string) {
	c.path = path
}
