package rope

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// generateText creates a string of the given size with realistic content.
func generateText(size int) string {
	var sb strings.Builder
	sb.Grow(size)

	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog", "hello", "world"}
	lineLen := 0

	for sb.Len() < size {
		word := words[rand.Intn(len(words))]
		if sb.Len()+len(word)+1 > size {
			break
		}
		if sb.Len() > 0 {
			if lineLen > 60 {
				sb.WriteByte('\n')
				lineLen = 0
			} else {
				sb.WriteByte(' ')
				lineLen++
			}
		}
		sb.WriteString(word)
		lineLen += len(word)
	}

	return sb.String()
}

func BenchmarkNewFromString(b *testing.B) {
	sizes := []int{100, 1000, 10000, 100000}
	for _, size := range sizes {
		text := generateText(size)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = NewFromString(text)
			}
		})
	}
}

// benchInsertDelete inserts then immediately deletes the same span at pos
// on every iteration, keeping the rope's size roughly constant across
// b.N runs since Insert mutates r in place.
func benchInsertDelete(b *testing.B, r *Rope, pos func(chars int) int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pos(r.CharCount())
		r.Insert(p, "x")
		r.Delete(p, 1)
	}
}

func BenchmarkInsertStart(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		r, _ := NewFromString(generateText(size))
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			benchInsertDelete(b, r, func(int) int { return 0 })
		})
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		r, _ := NewFromString(generateText(size))
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			benchInsertDelete(b, r, func(chars int) int { return chars / 2 })
		})
	}
}

func BenchmarkInsertEnd(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		r, _ := NewFromString(generateText(size))
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			benchInsertDelete(b, r, func(chars int) int { return chars })
		})
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		r, _ := NewFromString(generateText(size))
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			benchInsertDelete(b, r, func(chars int) int {
				if chars == 0 {
					return 0
				}
				return rand.Intn(chars)
			})
		})
	}
}

func BenchmarkDeleteMiddle(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			text := generateText(size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				r, _ := NewFromString(text)
				mid := r.CharCount() / 2
				b.StartTimer()
				r.Delete(mid, 1)
			}
		})
	}
}

func BenchmarkRuneAt(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		r, _ := NewFromString(generateText(size))
		mid := r.CharCount() / 2
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = r.RuneAt(mid)
			}
		})
	}
}

func BenchmarkSlice(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		r, _ := NewFromString(generateText(size))
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = r.Slice(0, r.CharCount()/2)
			}
		})
	}
}

func BenchmarkToUTF8(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		r, _ := NewFromString(generateText(size))
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = r.ToUTF8()
			}
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		r, _ := NewFromString(generateText(size), WithNodeCapacity(64))
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				it := r.Iterate()
				for {
					if _, ok := it.Next(); !ok {
						break
					}
				}
			}
		})
	}
}
