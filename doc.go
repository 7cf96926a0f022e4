// Package fundsplit allocates the profit of a pooled fund between its
// founders and its investors.
//
// A State holds one accounting window: the wallet value at its end and every
// capital leg known so far. Compute turns it into Outputs:
//   - Legs: investor contributions are expanded into their net credit and the
//     founders entry fee, exactly once.
//   - Profit: the wallet is reconciled with the capital base, the unrealized
//     part (the moonbag) is set apart from the realized profit.
//   - Time weighting: realized profit is shared by dollar-days, amount times
//     days held. Investor gains are charged a management fee carried to the
//     founders.
//   - Moonbag: founders get a fixed part, investors share the rest by their
//     own dollar-days.
//   - End capital: every owner rolls forward, adding up to the wallet.
//
// Compute is a pure function of its State. The validate package checks its
// Outputs independently, Snapshot and Trend keep the history of windows.
//
// This package serves as the foundational logic for the `fsplit` command-line
// tool and its HTTP server.
package fundsplit
