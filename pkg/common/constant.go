package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySBXDBType string = "SBX_DB_TYPE"
	EnvKeySBXDbPath string = "SBX_DB_PATH"

	EnvKeySBXHttpHostPort string = "SBX_HTTP_HOST_PORT"

	EnvKeySBXMqttBrokerURL          string = "SBX_MQTT_BROKER_URL"
	EnvKeySBXMqttConnectTimeoutMs   string = "SBX_MQTT_CONNECT_TIMEOUT_MS"
	EnvKeySBXMqttReconnectBackoffMs string = "SBX_MQTT_RECONNECT_BACKOFF_MS"

	EnvKeySBXDefaultGatewayTitle string = "SBX_DEFAULT_GATEWAY_TITLE"

	EnvKeySBXDefaultRate  string = "SBX_DEFAULT_RATE"
	EnvKeySBXDefaultBurst string = "SBX_DEFAULT_BURST"

	LoggerNameSettingsCore  string = "settings_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameMqttClient    string = "mqtt_client"
	LoggerFieldSBXCategory  string = "category"

	LoggerCategorySBXStore     string = "store"
	LoggerCategorySBXHistory   string = "history"
	LoggerCategorySBXLimits    string = "limits"
	LoggerCategorySBXReconcile string = "reconcile"
	LoggerCategorySBXValidate  string = "validate"
	LoggerCategorySBXTransform string = "transform"
	LoggerCategorySBXPublish   string = "publish"
)
