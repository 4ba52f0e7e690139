package clients

const (
	USER_AGENT = "emotionsense-client/1.0 (+https://github.com/maze4080/emotionsense)"

	VALKEY_RESULT_KEY_PREFIX = "emotion:result:"
)
