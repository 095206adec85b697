package main

import (
	"fmt"

	miner "github.com/Raavan18/b2b-data-miner"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return miner.Errorf(miner.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Reports.DeleteRun(deps.Ctx, c.ID); err != nil {
		if miner.ErrorCode(err) == miner.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'b2bminer runs' to see saved runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", miner.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %q\n", c.ID)
	return nil
}
