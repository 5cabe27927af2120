package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectivesForGoal_FiltersAndPreservesOrder(t *testing.T) {
	p := NewPlan()
	g1 := p.AddGoal("first")
	g2 := p.AddGoal("second")

	o1 := p.AddObjective(g1.ID, "a")
	o2 := p.AddObjective(g2.ID, "b")
	o3 := p.AddObjective(g1.ID, "c")

	assert.Equal(t, []Objective{o1, o3}, p.ObjectivesForGoal(g1.ID))
	assert.Equal(t, []Objective{o2}, p.ObjectivesForGoal(g2.ID))
	assert.Nil(t, p.ObjectivesForGoal("unknown"))
}

// The per-goal groups plus the orphan set must partition the objectives list:
// every objective appears exactly once.
func TestObjectivesForGoal_PartitionProperty(t *testing.T) {
	p := NewPlan()
	g1 := p.AddGoal("kept")
	g2 := p.AddGoal("doomed")

	p.AddObjective(g1.ID, "a")
	p.AddObjective(g2.ID, "b")
	p.AddObjective(g1.ID, "c")
	p.AddObjective("never-existed", "d")

	p.RemoveGoal(g2.ID)

	seen := make(map[string]int)
	for _, g := range p.Goals {
		for _, o := range p.ObjectivesForGoal(g.ID) {
			seen[o.ID]++
		}
	}
	for _, o := range p.OrphanedObjectives() {
		seen[o.ID]++
	}

	require.Len(t, seen, len(p.Objectives))
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

func TestRemoveGoal_PreservesOrphanedObjectives(t *testing.T) {
	p := NewPlan()
	g := p.AddGoal("only goal")
	o := p.AddObjective(g.ID, "dependent objective")

	p.RemoveGoal(g.ID)

	// The objective survives the delete but drops out of every derived view.
	require.Len(t, p.Objectives, 1)
	assert.Empty(t, p.ObjectivesForGoal(g.ID))
	assert.Equal(t, []Objective{o}, p.OrphanedObjectives())
	assert.Empty(t, p.SummaryTable())
}

func TestRemoveObjective_PreservesOrphanedTasks(t *testing.T) {
	p := NewPlan()
	g := p.AddGoal("goal")
	o := p.AddObjective(g.ID, "objective")
	tk := p.AddTask(o.ID, "task", "", "owner", "June")

	p.RemoveObjective(o.ID)

	require.Len(t, p.Tasks, 1)
	assert.Empty(t, p.TasksForObjective(o.ID))
	assert.Equal(t, []Task{tk}, p.OrphanedTasks())
}

func TestSummaryTable_SingleChainYieldsOneRow(t *testing.T) {
	p := NewPlan()
	g := p.AddGoal("Reduce wait times")
	o := p.AddObjective(g.ID, "Cut average wait to 5 days by Q2")
	p.AddTask(o.ID, "Audit current intake process", "", "service manager", "Q1")

	rows := p.SummaryTable()

	require.Len(t, rows, 1)
	assert.Equal(t, "Reduce wait times", rows[0].Goal)
	assert.Equal(t, "Cut average wait to 5 days by Q2", rows[0].Objective)
	assert.Equal(t, "Audit current intake process", rows[0].Task)
	assert.Equal(t, "service manager", rows[0].Responsibility)
	assert.Equal(t, "Q1", rows[0].Timeline)
}

func TestSummaryTable_ChildlessParentsGetPlaceholderRows(t *testing.T) {
	p := NewPlan()
	gEmpty := p.AddGoal("goal without objectives")
	gFull := p.AddGoal("goal with objectives")
	oEmpty := p.AddObjective(gFull.ID, "objective without tasks")
	oFull := p.AddObjective(gFull.ID, "objective with tasks")
	p.AddTask(oFull.ID, "t1", "", "", "")
	p.AddTask(oFull.ID, "t2", "", "", "")

	rows := p.SummaryTable()

	// one row per task, one placeholder per childless objective,
	// one placeholder per childless goal
	require.Len(t, rows, 4)
	assert.Equal(t, SummaryRow{Goal: gEmpty.Text}, rows[0])
	assert.Equal(t, SummaryRow{Goal: gFull.Text, Objective: oEmpty.Text}, rows[1])
	assert.Equal(t, "t1", rows[2].Task)
	assert.Equal(t, "t2", rows[3].Task)
}

func TestSummaryTable_RowAccounting(t *testing.T) {
	p := NewPlan()
	g1 := p.AddGoal("g1")
	g2 := p.AddGoal("g2")
	p.AddGoal("g3") // childless

	o1 := p.AddObjective(g1.ID, "o1")
	o2 := p.AddObjective(g1.ID, "o2") // childless
	o3 := p.AddObjective(g2.ID, "o3")

	p.AddTask(o1.ID, "a", "", "", "")
	p.AddTask(o1.ID, "b", "", "", "")
	p.AddTask(o3.ID, "c", "", "", "")
	_ = o2

	rows := p.SummaryTable()

	// 3 task rows + 1 childless objective + 1 childless goal
	assert.Len(t, rows, 5)
}
