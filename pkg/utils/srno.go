package utils

// NextSrNo 根据集合中现有的展示序号计算下一个序号。
// 取最大值加一；空集合从 1 开始。序号不保证连续，删除不回收。
func NextSrNo(existing []int) int {
	max := 0
	for _, n := range existing {
		if n > max {
			max = n
		}
	}
	return max + 1
}
