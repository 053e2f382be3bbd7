package utils

// SanitizeForStorage 递归清洗即将落库的文档数据。
// 规则：值为 nil 的字段保留为显式 null；嵌套 map 与切片递归处理；
// 未定义的键（解码后不会出现）自然被剔除。对同一数据重复调用结果不变。
func SanitizeForStorage(data map[string]interface{}) map[string]interface{} {
	sanitized := make(map[string]interface{}, len(data))
	for key, value := range data {
		sanitized[key] = sanitizeValue(value)
	}
	return sanitized
}

func sanitizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return SanitizeForStorage(v)
	case []interface{}:
		cleaned := make([]interface{}, len(v))
		for i, item := range v {
			cleaned[i] = sanitizeValue(item)
		}
		return cleaned
	default:
		return v
	}
}
