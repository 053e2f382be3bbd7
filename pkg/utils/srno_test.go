package utils

import "testing"

func TestNextSrNo(t *testing.T) {
	if got := NextSrNo([]int{3, 7, 1}); got != 8 {
		t.Errorf("NextSrNo([3,7,1]) = %d, want 8", got)
	}
	if got := NextSrNo(nil); got != 1 {
		t.Errorf("NextSrNo(nil) = %d, want 1", got)
	}
	if got := NextSrNo([]int{}); got != 1 {
		t.Errorf("NextSrNo([]) = %d, want 1", got)
	}
}
