package topology

import "fmt"

func validate(t map[RoundType]map[int]Topology) error {
	for n := MinTeams; n <= MaxTeams; n++ {
		initial := t[Initial][n]
		if initial.Seated() != n {
			return fmt.Errorf("initial %d: groups hold %d teams", n, initial.Seated())
		}
		if err := checkGroups(initial); err != nil {
			return err
		}

		intermediate := t[Intermediate][n]
		if err := checkGroups(intermediate); err != nil {
			return err
		}
		if err := checkSeats(intermediate, produced(initial)); err != nil {
			return err
		}

		prev := intermediate
		if len(prev.Groups) == 0 {
			prev = initial
		}
		knockout := t[Knockout][n]
		if err := checkGroups(knockout); err != nil {
			return err
		}
		if err := checkSeats(knockout, produced(prev)); err != nil {
			return err
		}
	}
	return nil
}

func checkGroups(top Topology) error {
	names := make(map[string]bool, len(top.Groups))
	for _, g := range top.Groups {
		if g.Name == "" || names[g.Name] {
			return fmt.Errorf("%s %d: missing or duplicate group name %q", top.Round, top.Teams, g.Name)
		}
		names[g.Name] = true
		if g.Grid.TeamCount() != g.Size {
			return fmt.Errorf("%s %d: group %s has %d teams on a %s grid", top.Round, top.Teams, g.Name, g.Size, g.Grid.Key())
		}
	}
	return nil
}

// checkSeats verifies that every seat is used once and exists in the round before.
func checkSeats(top Topology, available map[SeatRef]bool) error {
	used := make(map[SeatRef]bool)
	for _, g := range top.Groups {
		if len(g.Seats) != g.Size {
			return fmt.Errorf("%s %d: group %s has %d seats for %d teams", top.Round, top.Teams, g.Name, len(g.Seats), g.Size)
		}
		for _, seat := range g.Seats {
			if used[seat] {
				return fmt.Errorf("%s %d: seat %s used twice", top.Round, top.Teams, seat)
			}
			if !available[seat] {
				return fmt.Errorf("%s %d: seat %s does not exist in the previous round", top.Round, top.Teams, seat)
			}
			used[seat] = true
		}
	}
	return nil
}

func produced(top Topology) map[SeatRef]bool {
	out := make(map[SeatRef]bool)
	for _, g := range top.Groups {
		label, err := Label(g.Name)
		if err != nil {
			continue
		}
		for p := 1; p <= g.Size; p++ {
			out[SeatRef{Position: p, Group: label}] = true
		}
	}
	return out
}
