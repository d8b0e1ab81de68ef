package workerPool

import (
	"context"
	"sync"
	"sync/atomic"
)

type WorkerPool struct {
	tasks     chan func()
	taskQueue chan func()
	wg        *sync.WaitGroup
	quit      chan struct{}
	stopOnce  *sync.Once
	workers   int32
}

func NewWorkerPool(size, queueCapacity int, ctx context.Context) *WorkerPool {
	wp := &WorkerPool{
		tasks:     make(chan func(), size*5),
		taskQueue: make(chan func(), queueCapacity),
		wg:        new(sync.WaitGroup),
		quit:      make(chan struct{}),
		stopOnce:  new(sync.Once),
	}
	go func() {
		for {
			select {
			case task := <-wp.taskQueue:
				select {
				case wp.tasks <- task:
				case <-wp.quit:
					task()
					return
				}
			case <-wp.quit:
				return
			}
		}
	}()
	go func() {
		select {
		case <-ctx.Done():
			wp.Stop()
		case <-wp.quit:
		}
	}()
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) Submit(task func()) {
	wp.wg.Add(1)
	wrapped := func() {
		defer wp.wg.Done()
		task()
	}
	select {
	case wp.taskQueue <- wrapped:
	case <-wp.quit:
		wp.wg.Done()
	}
}

func (wp *WorkerPool) worker() {
	atomic.AddInt32(&wp.workers, 1)
	defer atomic.AddInt32(&wp.workers, -1)
	for {
		select {
		case task := <-wp.tasks:
			task()
		case <-wp.quit:
			return
		}
	}
}

func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		close(wp.quit)
	})
}
