package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
)

const retryMessage = "Input could not be read. Please try again."

// ChoosePlayer - asks whether the side is played by a user or the computer and, for the
// computer, at which level. Average is the heuristic, Good is the full search.
func (that *Console) ChoosePlayer(side entity.Side) (entity.StrategyKind, error) {
	for {
		that.printf("Player %s [%sser/%sPU]: ", that.mark(side), that.underline("U"), that.underline("C"))

		answer, err := that.ReadLine()
		if err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
		}

		switch strings.ToLower(answer) {
		case "u":
			return entity.StrategyHuman, nil
		case "c":
			return that.chooseLevel()
		default:
			that.println(retryMessage)
		}
	}
}

func (that *Console) chooseLevel() (entity.StrategyKind, error) {
	for {
		that.printf("└►Level: [%sverage/%sandom/%sood]: ", that.underline("A"), that.underline("R"), that.underline("G"))

		answer, err := that.ReadLine()
		if err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
		}

		switch strings.ToLower(answer) {
		case "a", "r", "g":
			return entity.ParseStrategyKind(answer)
		default:
			that.println(retryMessage)
		}
	}
}

// PlayAgain - Y, y or an empty line continue, N or n stop, anything else asks again.
// A closed input stops the session.
func (that *Console) PlayAgain() bool {
	for {
		that.printf("Play again? [Y/n] ")

		answer, err := that.ReadLine()
		if err != nil {
			that.println()
			return false
		}

		switch answer {
		case "Y", "y", "":
			return true
		case "N", "n":
			return false
		default:
			that.println("Failed to read input. Please try again.")
		}
	}
}
