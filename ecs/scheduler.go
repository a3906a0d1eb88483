package ecs

import (
	"context"
	"reflect"
	"strconv"
	"sync"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Queries        int
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	queries        int
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// boundQuery is implemented by *Query[T] for every T.
type boundQuery interface {
	Init(world *World, kind Kind)
	Execute()
}

type registeredSystem struct {
	system  System
	queries []boundQuery
}

// Scheduler manages and executes systems in registration order, one after
// another on the calling goroutine.
type Scheduler struct {
	world   *World
	systems []registeredSystem

	statsMu     sync.Mutex
	systemStats []*systemStatsInternal
}

// NewScheduler creates a new scheduler for the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:   world,
		systems: make([]registeredSystem, 0),
	}
}

// World returns the world the scheduler runs against.
func (s *Scheduler) World() *World {
	return s.world
}

// Register adds a system to the scheduler and binds its Query fields.
//
// A Query field must carry an `ecs` struct tag naming its kind, either by
// name (`ecs:"light"`) or by number for host-defined kinds (`ecs:"7"`).
func (s *Scheduler) Register(system System) {
	queries := s.initializeQueries(system)
	s.systems = append(s.systems, registeredSystem{system: system, queries: queries})

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.statsMu.Lock()
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		queries:     len(queries),
		minDuration: time.Duration(1<<63 - 1),
	})
	s.statsMu.Unlock()
}

func (s *Scheduler) initializeQueries(system System) []boundQuery {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Ptr {
		return nil
	}
	systemValue = systemValue.Elem()

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	systemType := systemValue.Type()

	var queries []boundQuery
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		q, ok := field.Addr().Interface().(boundQuery)
		if !ok {
			continue
		}

		tag, ok := fieldType.Tag.Lookup("ecs")
		if !ok {
			panic("ecs tag not found on Query field: " + fieldType.Name)
		}
		kind, ok := parseKindTag(tag)
		if !ok {
			panic("unknown kind " + strconv.Quote(tag) + " on Query field: " + fieldType.Name)
		}

		q.Init(s.world, kind)
		queries = append(queries, q)
	}
	return queries
}

func parseKindTag(tag string) (Kind, bool) {
	if kind, ok := ParseKind(tag); ok {
		return kind, true
	}
	n, err := strconv.ParseUint(tag, 10, 8)
	if err != nil || Kind(n) == KindInvalid {
		return KindInvalid, false
	}
	return Kind(n), true
}

// Once executes all registered systems once with the given delta time, then
// flushes the commands they queued.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.world)

	for i, rs := range s.systems {
		start := time.Now()
		for _, q := range rs.queries {
			q.Execute()
		}
		rs.system.Execute(frame)
		duration := time.Since(start)

		s.statsMu.Lock()
		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
		s.statsMu.Unlock()
	}

	frame.Commands.Flush()
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	stats := &SchedulerStats{
		SystemCount: len(s.systemStats),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Queries:        internal.queries,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
