package ai

import (
	"context"
	"time"
)

// Pacer 决策阶段之间的等待抽象。停顿只是节奏体验，决策管线
// 本身完全同步；测试与模拟用 Immediate 跳过全部等待，
// 结果不会有任何差别。
type Pacer interface {
	// Wait 阻塞一个停顿周期，ctx 取消时提前返回
	Wait(ctx context.Context) error
}

// delayPacer 真实停顿
type delayPacer struct {
	delay time.Duration
}

// NewPacer 创建按固定时长停顿的 Pacer
func NewPacer(delay time.Duration) Pacer {
	return delayPacer{delay: delay}
}

func (p delayPacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// immediatePacer 零等待
type immediatePacer struct{}

func (immediatePacer) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Immediate 不产生任何停顿的 Pacer
var Immediate Pacer = immediatePacer{}
