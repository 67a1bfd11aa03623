package renderer

// longestIncreasingSubsequence returns the indices (into source) of one
// longest strictly increasing subsequence of source's values. Entries
// equal to -1 are holes and can never belong to the subsequence.
//
// Patience sort with predecessor reconstruction, O(n log n).
func longestIncreasingSubsequence(source []int) []int {
	// tails[l] is the index of the smallest possible tail value of an
	// increasing subsequence of length l+1.
	var tails []int
	prev := make([]int, len(source))

	for i, v := range source {
		if v == -1 {
			continue
		}

		// First pile whose tail is >= v replaces its top with i.
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if source[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}

		if lo > 0 {
			prev[i] = tails[lo-1]
		} else {
			prev[i] = -1
		}

		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	if len(tails) == 0 {
		return nil
	}

	seq := make([]int, len(tails))
	k := tails[len(tails)-1]
	for j := len(tails) - 1; j >= 0; j-- {
		seq[j] = k
		k = prev[k]
	}
	return seq
}
