// Package jitter добавляет случайную составляющую к интервалам повторных попыток,
// чтобы несколько клиентов не переподключались к брокеру одновременно.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultFactor - доля случайной добавки по умолчанию (50%).
const DefaultFactor = 0.5

// Duration возвращает d, увеличенную на случайную величину из [0, d*factor).
func Duration(d time.Duration, factor float64) time.Duration {
	return withRand(d, factor, rand.Float64)
}

// Exponential вычисляет задержку перед попыткой attempt (с нуля): base*2^attempt,
// ограниченную max, с добавлением джиттера.
func Exponential(base, max time.Duration, attempt int, factor float64) time.Duration {
	return Duration(exponential(base, max, attempt), factor)
}

func exponential(base, max time.Duration, attempt int) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff >= max {
			return max
		}
	}

	return backoff
}

func withRand(d time.Duration, factor float64, rnd func() float64) time.Duration {
	if d <= 0 || factor <= 0 {
		return d
	}

	return d + time.Duration(rnd()*factor*float64(d))
}
