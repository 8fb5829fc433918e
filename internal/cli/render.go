package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/service"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// renderTeams prints one block per team. withOwner adds the trainer column
// used by community listings.
func renderTeams(w io.Writer, teams []domain.Team, withOwner bool) {
	tw := newTable(w)
	if withOwner {
		fmt.Fprintln(tw, "ID\tNAME\tTRAINER\tSIZE\tTOTAL\tMEMBERS")
	} else {
		fmt.Fprintln(tw, "ID\tNAME\tSIZE\tTOTAL\tMEMBERS")
	}
	for _, t := range teams {
		total := 0
		if s := service.Aggregate(&t); s != nil {
			total = s.Sum()
		}
		size := fmt.Sprintf("%d/%d", t.Size(), domain.MaxRosterSize)
		if withOwner {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", t.ID, t.Name, t.OwnerName(), size, total, memberNames(t))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", t.ID, t.Name, size, total, memberNames(t))
		}
	}
	_ = tw.Flush()
}

func memberNames(t domain.Team) string {
	if t.IsEmpty() {
		return "-"
	}
	names := make([]string, len(t.Pokemons))
	for i, p := range t.Pokemons {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func renderBattle(w io.Writer, rep domain.BattleReport) {
	fmt.Fprintf(w, "%s vs %s", rep.Owner.Name, rep.Rival.Name)
	if owner := rep.Rival.OwnerName(); owner != "" {
		fmt.Fprintf(w, " (%s)", owner)
	}
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintf(tw, "STAT\t%s\t%s\n", rep.Owner.Name, rep.Rival.Name)
	for _, axis := range rep.Axes {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", axis.Label, axis.Owner, axis.Rival)
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t%d\n", rep.OwnerTotals.Sum(), rep.RivalTotals.Sum())
	_ = tw.Flush()

	switch rep.Outcome.Winner {
	case domain.WinnerOwner:
		fmt.Fprintf(w, "%s wins by %d!\n", rep.Owner.Name, rep.Outcome.Margin)
	case domain.WinnerRival:
		fmt.Fprintf(w, "%s wins by %d.\n", rep.Rival.Name, rep.Outcome.Margin)
	default:
		fmt.Fprintln(w, "It's a tie!")
	}
}

func renderUser(w io.Writer, u domain.User) {
	tw := newTable(w)
	fmt.Fprintf(tw, "username\t%s\n", u.Username)
	fmt.Fprintf(tw, "email\t%s\n", u.Email)
	if u.Avatar != "" {
		fmt.Fprintf(tw, "avatar\t%s\n", u.Avatar)
	}
	if u.FavoriteTeam != nil {
		fmt.Fprintf(tw, "favorite\t%s (%s)\n", u.FavoriteTeam.Name, u.FavoriteTeam.ID)
	} else {
		fmt.Fprintf(tw, "favorite\t-\n")
	}
	_ = tw.Flush()
}
