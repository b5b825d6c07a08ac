package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/gitaurr/gitaurr/constants"
	"github.com/gitaurr/gitaurr/export"
	"github.com/gitaurr/gitaurr/model"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <tabId>",
	Short: "Plays a tab on the first MIDI out port",
	Long:  `Plays a tab on the first MIDI out port`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}

		s := openStore()
		doc, ok := s.FindTab(args[0])
		if !ok {
			fmt.Printf("No tab with id %v\n", args[0])
			return
		}
		play(doc)
	},
}

func play(doc model.TabDocument) {
	defer midi.CloseDriver()
	out, err := midi.OutPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI out port")
		return
	}
	send, err := midi.SendTo(out)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	notes := export.ToMidi(doc)
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Start < notes[j].Start
	})

	bpm := doc.Metadata.Bpm
	if bpm <= 0 {
		bpm = constants.DefaultTempo
	}
	msPerTick := 60000.0 / float64(bpm) / constants.TicksPerBeat

	// crude sequential playback, good enough for auditioning a riff
	var elapsed float64
	for _, n := range notes {
		if n.Start > elapsed {
			time.Sleep(time.Duration((n.Start-elapsed)*msPerTick) * time.Millisecond)
			elapsed = n.Start
		}
		send(midi.NoteOn(0, uint8(n.Note), uint8(n.Velocity)))
		time.Sleep(time.Duration(n.Duration*msPerTick) * time.Millisecond)
		send(midi.NoteOff(0, uint8(n.Note)))
		elapsed += n.Duration
	}
}
