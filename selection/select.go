package selection

import "math"

// narrowingThreshold is the range size above which Select first narrows
// the working range statistically before partitioning exactly.
const narrowingThreshold = 600

// Select rearranges data[left..right] (inclusive bounds) in place so that
// the element destined for rank k ends up at index k, with every element
// left of it ordered not after it and every element right of it not before
// it. Ordering is defined by less.
//
// For ranges larger than a fixed threshold the working range is first
// narrowed to a statistically estimated sub-range around rank k, using a
// gaussian approximation to bound the sampling error. This keeps the
// expected number of comparisons linear even for large inputs.
func Select[T any](data []T, left, right, k int, less func(a, b T) bool) {
	for right > left {
		if right-left > narrowingThreshold {
			n := float64(right - left + 1)
			m := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
			if m-n/2 < 0 {
				sd = -sd
			}
			newLeft := maxInt(left, int(math.Floor(float64(k)-m*s/n+sd)))
			newRight := minInt(right, int(math.Floor(float64(k)+(n-m)*s/n+sd)))
			Select(data, newLeft, newRight, k, less)
		}

		pivot := data[k]
		i, j := left, right

		data[left], data[k] = data[k], data[left]
		if less(pivot, data[right]) {
			data[left], data[right] = data[right], data[left]
		}
		for i < j {
			data[i], data[j] = data[j], data[i]
			i++
			j--
			for less(data[i], pivot) {
				i++
			}
			for less(pivot, data[j]) {
				j--
			}
		}
		if !less(data[left], pivot) && !less(pivot, data[left]) {
			data[left], data[j] = data[j], data[left]
		} else {
			j++
			data[j], data[right] = data[right], data[j]
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

// MultiSelect rearranges data[left..right] in place into contiguous groups
// of approximately groupSize elements that are fully ordered between
// groups but unordered within a group. The range is repeatedly bisected at
// group-aligned midpoints, with Select pinning each midpoint, for average
// linear total cost.
func MultiSelect[T any](data []T, left, right, groupSize int, less func(a, b T) bool) {
	stack := []int{left, right}
	for len(stack) > 0 {
		right = stack[len(stack)-1]
		left = stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		if right-left <= groupSize {
			continue
		}
		mid := left + int(math.Ceil(float64(right-left)/float64(groupSize)/2))*groupSize
		Select(data, left, right, mid, less)
		stack = append(stack, left, mid, mid, right)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
