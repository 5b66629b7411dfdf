package workflow

import (
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// deliveryKeyword marks a category as the delivery checklist. Matching is done
// on normalized names, so "Entrega", "ENTREGA de productos" and "entréga" all
// qualify.
const deliveryKeyword = "entrega"

// DefaultDeliveryCategoryName is the name given to a synthesized delivery
// category when the checklist has none.
const DefaultDeliveryCategoryName = "Entrega de productos"

// deliveryTitlePrefix prefixes the canonical per-product delivery task title.
const deliveryTitlePrefix = "Entregar"

// Task is a single checklist item. Tasks are plain values: identity for
// matching purposes is the normalized title, not the ID. The ID only keeps
// UI rows stable.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Category groups tasks under a named checklist section. A category whose
// normalized name contains "entrega" is the distinguished delivery category
// that gates the completed status.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// IsDelivery reports whether this category is a delivery category.
func (c Category) IsDelivery() bool {
	return strings.Contains(kernel.Normalize(c.Name), deliveryKeyword)
}

// Progress returns the percentage of done tasks in the category, rounded to
// the nearest integer. A category without tasks is at 0%.
func (c Category) Progress() int {
	if len(c.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range c.Tasks {
		if t.Done {
			done++
		}
	}
	return int(float64(done)/float64(len(c.Tasks))*100 + 0.5)
}

// DeliveryTaskTitle builds the canonical delivery task title for a product,
// "Entregar {productName}". Comparisons against it always go through
// kernel.Normalize.
func DeliveryTaskTitle(productName string) string {
	return fmt.Sprintf("%s %s", deliveryTitlePrefix, productName)
}

// Clone deep-copies a checklist so callers can mutate the result without
// affecting the original.
func Clone(categories []Category) []Category {
	cloned := make([]Category, len(categories))
	for i, c := range categories {
		tasks := make([]Task, len(c.Tasks))
		copy(tasks, c.Tasks)
		c.Tasks = tasks
		cloned[i] = c
	}
	return cloned
}

// FindDelivery returns the index of the first delivery category, or -1 if the
// checklist has none.
func FindDelivery(categories []Category) int {
	for i, c := range categories {
		if c.IsDelivery() {
			return i
		}
	}
	return -1
}

// EnsureDeliveryTasks guarantees the checklist contains a delivery category
// with exactly one task per product name. The input is never mutated; a deep
// copy is returned.
//
// Rules:
//   - The first category whose normalized name contains "entrega" is used;
//     when none exists a new "Entrega de productos" category is appended.
//   - For each product name the canonical title "Entregar {name}" is added
//     unless a task with the same normalized title already exists.
//   - Existing tasks are never removed, reordered or reset; duplicate product
//     names collapse into a single task.
//
// EnsureDeliveryTasks is idempotent: applying it twice yields the same task
// set as applying it once.
func EnsureDeliveryTasks(base []Category, productNames []string) []Category {
	cloned := Clone(base)

	idx := FindDelivery(cloned)
	if idx < 0 {
		cloned = append(cloned, Category{
			ID:    NewID(),
			Name:  DefaultDeliveryCategoryName,
			Tasks: []Task{},
		})
		idx = len(cloned) - 1
	}

	existing := make(map[string]struct{}, len(cloned[idx].Tasks))
	for _, t := range cloned[idx].Tasks {
		existing[kernel.Normalize(t.Title)] = struct{}{}
	}

	for _, name := range productNames {
		title := DeliveryTaskTitle(name)
		key := kernel.Normalize(title)
		if _, ok := existing[key]; ok {
			continue
		}
		cloned[idx].Tasks = append(cloned[idx].Tasks, Task{
			ID:    NewID(),
			Title: title,
			Done:  false,
		})
		existing[key] = struct{}{}
	}

	return cloned
}

// Toggle returns a copy of the checklist with exactly one task's done flag set
// to the given value. The targeted task is addressed by category and task
// index; out-of-bounds indexes are an error.
func Toggle(categories []Category, categoryIndex, taskIndex int, done bool) ([]Category, error) {
	if categoryIndex < 0 || categoryIndex >= len(categories) {
		return nil, errs.NewValueIsOutOfRangeError("categoryIndex", categoryIndex, 0, len(categories)-1)
	}
	if taskIndex < 0 || taskIndex >= len(categories[categoryIndex].Tasks) {
		return nil, errs.NewValueIsOutOfRangeError("taskIndex", taskIndex, 0, len(categories[categoryIndex].Tasks)-1)
	}

	updated := Clone(categories)
	updated[categoryIndex].Tasks[taskIndex].Done = done
	return updated, nil
}

// MergeDeliveryDone copies done flags from the source checklist's first
// delivery category into every delivery category of the target, matching
// tasks by normalized title. Tasks present only in the target keep their
// prior done value. The target is not mutated; a deep copy is returned.
func MergeDeliveryDone(target, source []Category) []Category {
	merged := Clone(target)

	srcIdx := FindDelivery(source)
	if srcIdx < 0 {
		return merged
	}

	doneByTitle := make(map[string]bool, len(source[srcIdx].Tasks))
	for _, t := range source[srcIdx].Tasks {
		doneByTitle[kernel.Normalize(t.Title)] = t.Done
	}

	for i, c := range merged {
		if !c.IsDelivery() {
			continue
		}
		for j, t := range c.Tasks {
			if done, ok := doneByTitle[kernel.Normalize(t.Title)]; ok {
				merged[i].Tasks[j].Done = done
			}
		}
	}

	return merged
}

// HasAnyTasks reports whether any category in the checklist contains at least
// one task.
func HasAnyTasks(categories []Category) bool {
	for _, c := range categories {
		if len(c.Tasks) > 0 {
			return true
		}
	}
	return false
}

// HasAnyDone reports whether any task anywhere in the checklist is done.
func HasAnyDone(categories []Category) bool {
	for _, c := range categories {
		for _, t := range c.Tasks {
			if t.Done {
				return true
			}
		}
	}
	return false
}

// NewID produces a fresh opaque identifier for synthesized categories and tasks.
func NewID() string {
	return uuid.NewString()
}
