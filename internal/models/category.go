package models

import "fmt"

type Category string

const (
	CategorySports   Category = "Sports"
	CategoryStudy    Category = "Study"
	CategoryWork     Category = "Work"
	CategoryMeetings Category = "Meetings"
	CategoryHabits   Category = "Habits"
	CategoryGym      Category = "Gym"
	CategoryRelax    Category = "Relax"
	CategoryOthers   Category = "Others"
)

// CategoryMeta carries the fixed display metadata each category ships with.
type CategoryMeta struct {
	Name    string
	Color   string
	Icon    string
	Insight string
}

// categoryMeta is the static lookup driving per-category display and insight
// text. Built once; rendering layers read it, nothing writes it.
var categoryMeta = map[Category]CategoryMeta{
	CategorySports: {
		Name:  "Sports",
		Color: "blue",
		Icon:  "figure.run",
		Insight: "1. Regular physical activity improves mental and physical health.\n" +
			"2. Strength training builds muscle and boosts metabolism.\n" +
			"3. Cardiovascular exercises like running enhance heart health.\n" +
			"4. Playing team sports helps develop communication and leadership skills.",
	},
	CategoryStudy: {
		Name:  "Study",
		Color: "green",
		Icon:  "books.vertical",
		Insight: "1. Active recall is more effective than passive reading.\n" +
			"2. Spaced repetition improves long-term retention.\n" +
			"3. Mind mapping helps visualize and connect complex concepts.\n" +
			"4. Regular breaks improve focus and prevent burnout.",
	},
	CategoryWork: {
		Name:  "Work",
		Color: "red",
		Icon:  "latch.2.case",
		Insight: "1. Prioritizing tasks with the Eisenhower Matrix boosts productivity.\n" +
			"2. Effective time management leads to better work-life balance.\n" +
			"3. Delegation of tasks reduces stress and increases efficiency.\n" +
			"4. Regular feedback helps improve skills and professional growth.",
	},
	CategoryMeetings: {
		Name:  "Meetings",
		Color: "orange",
		Icon:  "person.line.dotted.person",
		Insight: "1. Setting a clear agenda leads to more productive meetings.\n" +
			"2. Short, focused meetings prevent wasted time.\n" +
			"3. Active listening improves communication and collaboration.\n" +
			"4. Following up with action items ensures tasks are completed.",
	},
	CategoryHabits: {
		Name:  "Habits",
		Color: "purple",
		Icon:  "arrow.triangle.2.circlepath",
		Insight: "1. Habit stacking helps integrate new routines effortlessly.\n" +
			"2. Consistency is more important than intensity for habit formation.\n" +
			"3. Tracking progress increases motivation and commitment.\n" +
			"4. Breaking bad habits requires replacing them with positive alternatives.",
	},
	CategoryGym: {
		Name:  "Gym",
		Color: "yellow",
		Icon:  "dumbbell",
		Insight: "1. Progressive overload is key to building strength and muscle.\n" +
			"2. Proper form is more important than lifting heavier weights.\n" +
			"3. Rest and recovery are essential for muscle growth and injury prevention.\n" +
			"4. Nutrition plays a crucial role in fitness progress.",
	},
	CategoryRelax: {
		Name:  "Relax",
		Color: "teal",
		Icon:  "film.fill",
		Insight: "1. Taking breaks with entertainment boosts creativity and reduces stress.\n" +
			"2. Balance is key - too much screen time can affect productivity and sleep.\n" +
			"3. Engaging in different forms of entertainment (movies, music, books) enhances well-being.\n" +
			"4. Social entertainment, like games or events, strengthens relationships and teamwork.",
	},
	CategoryOthers: {
		Name:  "Others",
		Color: "gray",
		Icon:  "tray.full",
		Insight: "1. Miscellaneous tasks should be grouped for better organization.\n" +
			"2. Keeping a to-do list helps track small but important tasks.\n" +
			"3. Time-blocking ensures even unstructured work is completed.\n" +
			"4. Prioritization prevents low-impact tasks from taking up too much time.",
	},
}

// Metadata returns the category's display metadata. Unknown categories fall
// back to the Others entry.
func (c Category) Metadata() CategoryMeta {
	if m, ok := categoryMeta[c]; ok {
		return m
	}
	return categoryMeta[CategoryOthers]
}

// Categories lists every category in declaration order.
func Categories() []Category {
	return []Category{
		CategorySports, CategoryStudy, CategoryWork, CategoryMeetings,
		CategoryHabits, CategoryGym, CategoryRelax, CategoryOthers,
	}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
