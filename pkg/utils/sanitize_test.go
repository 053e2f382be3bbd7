package utils

import (
	"reflect"
	"testing"
)

func TestSanitizeForStorageKeepsExplicitNull(t *testing.T) {
	input := map[string]interface{}{
		"mobile":  "9876543210",
		"rtsDate": nil,
	}
	got := SanitizeForStorage(input)
	value, ok := got["rtsDate"]
	if !ok {
		t.Fatal("nil 字段应保留为显式 null，而不是被剔除")
	}
	if value != nil {
		t.Errorf("rtsDate = %v, want nil", value)
	}
}

func TestSanitizeForStorageRecursesNested(t *testing.T) {
	input := map[string]interface{}{
		"originalNumberData": map[string]interface{}{
			"safeCustodyDate": nil,
			"notes":           "ok",
		},
		"tags": []interface{}{
			map[string]interface{}{"checkInDate": nil},
		},
	}
	got := SanitizeForStorage(input)
	nested, ok := got["originalNumberData"].(map[string]interface{})
	if !ok {
		t.Fatal("嵌套 map 应递归处理")
	}
	if v, ok := nested["safeCustodyDate"]; !ok || v != nil {
		t.Errorf("嵌套 nil 字段应保留为 null, got %v", v)
	}
	items, ok := got["tags"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatal("切片应递归处理")
	}
}

func TestSanitizeForStorageIdempotent(t *testing.T) {
	input := map[string]interface{}{
		"a": nil,
		"b": map[string]interface{}{"c": nil, "d": 1.0},
	}
	once := SanitizeForStorage(input)
	twice := SanitizeForStorage(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("重复清洗结果应一致: %v != %v", once, twice)
	}
}
