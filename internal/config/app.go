package config

type AppConfig struct {
	Server ServerConfig
	Auth   AuthConfig
	Log    LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	authCfg, err := LoadAuth()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server: serverCfg,
		Auth:   authCfg,
		Log:    logCfg,
	}, nil
}
