package utils

// CalculateDigitalRoot 计算号码字符串的数字根（反复求各位数字之和直到只剩一位）。
// 非数字字符会被跳过；纯数字 10 位号码的结果范围为 1-9，全空输入返回 0。
func CalculateDigitalRoot(number string) int {
	sum := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	for sum > 9 {
		next := 0
		for sum > 0 {
			next += sum % 10
			sum /= 10
		}
		sum = next
	}
	return sum
}
