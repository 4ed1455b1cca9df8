package util

import "iter"

func Keys[K, V any](s iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s {
			if !yield(k) {
				return
			}
		}
	}
}

func CollectMap[K comparable, V any](s iter.Seq2[K, V]) map[K]V {
	collected := make(map[K]V)
	for k, v := range s {
		collected[k] = v
	}
	return collected
}
