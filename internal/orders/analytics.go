package orders

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/montanaflynn/stats"

	"github.com/talkincode/foodking/internal/domain"
)

const dateLayout = "2006-01-02"

// Statistics recomputes totals, revenue and the completion rate over
// all stored orders. Zero orders yield a zero rate, never a division
// error.
func (r *BoltRepository) Statistics() (domain.OrderStatistics, error) {
	orders, err := r.List()
	if err != nil {
		return domain.OrderStatistics{}, err
	}
	out := domain.OrderStatistics{TotalOrders: len(orders)}
	revenues := make([]float64, 0, len(orders))
	for _, o := range orders {
		if o.Done() {
			out.CompletedOrders++
		} else {
			out.PendingOrders++
		}
		revenues = append(revenues, o.Revenue())
	}
	if len(revenues) > 0 {
		if sum, err := stats.Sum(revenues); err == nil {
			out.TotalRevenue = sum
		}
	}
	if out.TotalOrders > 0 {
		rate := float64(out.CompletedOrders) / float64(out.TotalOrders) * 100
		if rounded, err := stats.Round(rate, 2); err == nil {
			out.CompletionRate = rounded
		}
	}
	return out, nil
}

// PopularDishes aggregates ordered quantities per dish name across all
// orders and returns the top entries, descending. Ties keep encounter
// order.
func (r *BoltRepository) PopularDishes(limit int) ([]domain.DishCount, error) {
	orders, err := r.List()
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	names := []string{}
	for _, o := range orders {
		for _, line := range o.Cart {
			if _, seen := counts[line.Name]; !seen {
				names = append(names, line.Name)
			}
			counts[line.Name] += line.Qty
		}
	}
	ranking := make([]domain.DishCount, 0, len(names))
	for _, name := range names {
		ranking = append(ranking, domain.DishCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

// RevenueByDate sums order revenue per calendar day over the last days
// days including today, keyed YYYY-MM-DD. Orders outside the window or
// without a resolvable date are ignored; empty buckets stay zero.
func (r *BoltRepository) RevenueByDate(days int) (map[string]float64, error) {
	orders, err := r.List()
	if err != nil {
		return nil, err
	}
	buckets := map[string]float64{}
	today := time.Now()
	for i := 0; i < days; i++ {
		buckets[today.AddDate(0, 0, -i).Format(dateLayout)] = 0
	}
	for _, o := range orders {
		day, ok := orderDay(o)
		if !ok {
			continue
		}
		if _, inWindow := buckets[day]; inWindow {
			buckets[day] += o.Revenue()
		}
	}
	return buckets, nil
}

// orderDay resolves the calendar day of an order from CreatedAt, or
// from the legacy free-form time field when CreatedAt is unset.
func orderDay(o domain.Order) (string, bool) {
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt.Format(dateLayout), true
	}
	if o.Time == "" {
		return "", false
	}
	t, err := dateparse.ParseAny(o.Time)
	if err != nil {
		return "", false
	}
	return t.Format(dateLayout), true
}
