package catalog

import (
	"time"

	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/httperr"
)

// MaxBatchSlots limita o lote; acima disso o backend costuma estourar timeout.
const MaxBatchSlots = 5000

const maxIntervalMinutes = 24 * 60

type Slot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func parseHM(v string) (time.Time, error) {
	if t, err := time.Parse("15:04", v); err == nil {
		return t, nil
	}
	return time.Parse("15:04:05", v)
}

// backendWeekday converte para 0 = segunda ... 6 = domingo.
func backendWeekday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

type batchPlan struct {
	start, end  time.Time
	dayStart    time.Time
	dayEnd      time.Time
	interval    time.Duration
	weekdays    map[int]bool
	months      map[int]bool
	slotsPerDay int
}

func planBatch(req dto.ScheduleBatchRequest) (*batchPlan, error) {
	start, err := time.Parse(isoDate, req.StartDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	end, err := time.Parse(isoDate, req.EndDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if end.Before(start) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	dayStart, err := parseHM(req.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	dayEnd, err := parseHM(req.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if !dayEnd.After(dayStart) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	if req.IntervalMinutes <= 0 || req.IntervalMinutes > maxIntervalMinutes {
		return nil, httperr.ErrBusiness("invalid_interval")
	}
	interval := time.Duration(req.IntervalMinutes) * time.Minute

	p := &batchPlan{
		start:    start,
		end:      end,
		dayStart: dayStart,
		dayEnd:   dayEnd,
		interval: interval,
	}

	if len(req.Weekdays) > 0 {
		p.weekdays = make(map[int]bool, len(req.Weekdays))
		for _, wd := range req.Weekdays {
			if wd < 0 || wd > 6 {
				return nil, httperr.ErrBusiness("invalid_weekday")
			}
			p.weekdays[wd] = true
		}
	}
	if len(req.Months) > 0 {
		p.months = make(map[int]bool, len(req.Months))
		for _, m := range req.Months {
			if m < 1 || m > 12 {
				return nil, httperr.ErrBusiness("invalid_month")
			}
			p.months[m] = true
		}
	}

	p.slotsPerDay = int(dayEnd.Sub(dayStart) / interval)
	return p, nil
}

func (p *batchPlan) includes(d time.Time) bool {
	if p.weekdays != nil && !p.weekdays[backendWeekday(d.Weekday())] {
		return false
	}
	if p.months != nil && !p.months[int(d.Month())] {
		return false
	}
	return true
}

// days devolve os dias incluídos, parando assim que o lote passa de
// MaxBatchSlots; o segundo retorno indica que o limite foi excedido.
func (p *batchPlan) days() ([]time.Time, bool) {
	var out []time.Time
	for d := p.start; !d.After(p.end); d = d.AddDate(0, 0, 1) {
		if !p.includes(d) {
			continue
		}
		out = append(out, d)
		if len(out)*p.slotsPerDay > MaxBatchSlots {
			return nil, true
		}
	}
	return out, false
}

func (p *batchPlan) validate() ([]time.Time, int, error) {
	if p.slotsPerDay <= 0 {
		return nil, 0, httperr.ErrBusiness("batch_empty")
	}

	// sem filtros o total sai direto do intervalo de datas
	if p.weekdays == nil && p.months == nil {
		span := (p.end.Unix()-p.start.Unix())/86400 + 1
		if span > int64(MaxBatchSlots/p.slotsPerDay) {
			return nil, 0, httperr.ErrBusiness("batch_too_large")
		}
	}

	days, tooLarge := p.days()
	if tooLarge {
		return nil, 0, httperr.ErrBusiness("batch_too_large")
	}
	total := len(days) * p.slotsPerDay
	if total <= 0 {
		return nil, 0, httperr.ErrBusiness("batch_empty")
	}
	return days, total, nil
}

// ValidateBatch confere o pedido de lote e devolve quantos horários ele gera.
func ValidateBatch(req dto.ScheduleBatchRequest) (int, error) {
	p, err := planBatch(req)
	if err != nil {
		return 0, err
	}
	_, total, err := p.validate()
	return total, err
}

// ExpandBatch lista os horários que o lote criaria. Só entram fatias
// inteiras: um resto menor que o intervalo no fim do dia é descartado.
func ExpandBatch(req dto.ScheduleBatchRequest) ([]Slot, error) {
	p, err := planBatch(req)
	if err != nil {
		return nil, err
	}
	days, total, err := p.validate()
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, total)
	for _, d := range days {
		date := d.Format(isoDate)
		cur := p.dayStart
		for i := 0; i < p.slotsPerDay; i++ {
			next := cur.Add(p.interval)
			slots = append(slots, Slot{
				Date:      date,
				StartTime: cur.Format("15:04"),
				EndTime:   next.Format("15:04"),
			})
			cur = next
		}
	}
	return slots, nil
}
