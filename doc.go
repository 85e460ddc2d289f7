// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package finance-sheets maintains a personal finance ledger stored as a Google Sheets worksheet.

Each ledger entry records the date, the amount in the account and the salary received, together with the
derived total, a 20% reserve and the remaining spendable amount. finance-sheets authorises access to the
spreadsheet with OAuth2 (caching the token locally), displays the worksheet and appends new entries captured
interactively from the console.

finance-sheets supports the following commands:

  - run, to display the worksheet and append a new entry (the default)
  - show, to display the worksheet
  - add, to append a new entry without displaying the worksheet
  - authorise, to authorise application access to the Google Sheets worksheet
  - export, to download the worksheet as a TSV file
  - version, to display the current version
*/
package sheets
