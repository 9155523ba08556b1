package algorithm

import (
	"context"
	"sort"
)

const (
	LinearSearch = "linear_search"
	BinarySearch = "binary_search"
	BubbleSort   = "bubble_sort"
	NestedLoops  = "nested_loops"
	MergeSort    = "merge_sort"
)

// Catalog 内置参考算法
func Catalog() []Entry {
	return []Entry{
		{ID: LinearSearch, Label: Linear, Run: linearSearch},
		{ID: BinarySearch, Label: Logarithmic, Run: binarySearch},
		{ID: BubbleSort, Label: Quadratic, Run: bubbleSort},
		{ID: NestedLoops, Label: Quadratic, Run: nestedLoops},
		{ID: MergeSort, Label: Linearithmic, Run: mergeSort},
	}
}

// Default 由内置目录构造的 Registry
func Default() *Registry {
	r, err := NewRegistry(Catalog()...)
	if err != nil {
		panic(err)
	}
	return r
}

func ascending(size int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = i
	}
	return data
}

func descending(size int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = size - i
	}
	return data
}

// 最坏情况：目标在末尾
func linearSearch(_ context.Context, size int) error {
	data := ascending(size)
	target := size - 1
	found := -1
	for i, v := range data {
		if v == target {
			found = i
			break
		}
	}
	_ = found
	return nil
}

// 输入构造是 O(n)，计入样本
func binarySearch(_ context.Context, size int) error {
	data := ascending(size)
	_ = sort.SearchInts(data, size-1)
	_ = sort.SearchInts(data, size)
	return nil
}

func bubbleSort(ctx context.Context, size int) error {
	data := descending(size)
	for i := 0; i < len(data)-1; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		swapped := false
		for j := 0; j < len(data)-1-i; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return nil
}

func nestedLoops(ctx context.Context, size int) error {
	acc := 0
	for i := 0; i < size; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < size; j++ {
			acc += i ^ j
		}
	}
	_ = acc
	return nil
}

func mergeSort(ctx context.Context, size int) error {
	data := descending(size)
	buf := make([]int, size)
	return mergeSortRange(ctx, data, buf)
}

func mergeSortRange(ctx context.Context, data, buf []int) error {
	if len(data) < 2 {
		return nil
	}
	if len(data) >= 1<<12 {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	mid := len(data) / 2
	if err := mergeSortRange(ctx, data[:mid], buf[:mid]); err != nil {
		return err
	}
	if err := mergeSortRange(ctx, data[mid:], buf[mid:]); err != nil {
		return err
	}
	i, j, k := 0, mid, 0
	for i < mid && j < len(data) {
		if data[i] <= data[j] {
			buf[k] = data[i]
			i++
		} else {
			buf[k] = data[j]
			j++
		}
		k++
	}
	k += copy(buf[k:], data[i:mid])
	copy(buf[k:], data[j:])
	copy(data, buf[:len(data)])
	return nil
}
